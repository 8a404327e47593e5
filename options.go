// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// Options configures pipeline creation.
type Options struct {
	// Capacity (exact, no rounding)
	size int

	// Overflow behavior when full
	policy Policy
}

// Builder creates pipelines with fluent configuration.
//
// Example:
//
//	// Lossless receive queue between a reader and a worker
//	rx := syncx.Build[*Frame](syncx.New(256), releaseFrame)
//
//	// Latest-N telemetry: a slow consumer sees only recent samples
//	tm := syncx.Build[Sample](syncx.New(64).Drop(), nil)
type Builder struct {
	opts Options
}

// New creates a pipeline builder with the given capacity.
//
// Unlike ring sizes in lock-free queues, capacity is used as given: a
// pipeline of size 3 holds exactly 3 items.
//
// Panics if size < 1.
func New(size int) *Builder {
	if size < 1 {
		panic("syncx: pipeline size must be >= 1")
	}
	return &Builder{opts: Options{size: size, policy: PolicyWait}}
}

// Wait selects PolicyWait: Put blocks while the pipeline is full.
// This is the default.
func (b *Builder) Wait() *Builder {
	b.opts.policy = PolicyWait
	return b
}

// Drop selects PolicyDrop: Put evicts the oldest item when full.
func (b *Builder) Drop() *Builder {
	b.opts.policy = PolicyDrop
	return b
}

// Build creates a Pipeline[T] from the builder configuration.
// destroy may be nil when queued items own no resources.
func Build[T any](b *Builder, destroy func(T)) *Pipeline[T] {
	return NewPipeline[T](b.opts.size, b.opts.policy, destroy)
}
