// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"context"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Policy selects what Put does when a pipeline is full.
type Policy uint8

const (
	// PolicyWait blocks the producer until a consumer frees a slot.
	// Lossless backpressure.
	PolicyWait Policy = iota

	// PolicyDrop evicts the oldest unread item to make room.
	// Bounded staleness; evicted items go to the destructor and are not
	// counted anywhere.
	PolicyDrop
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyWait:
		return "wait"
	case PolicyDrop:
		return "drop"
	default:
		return "unknown"
	}
}

const (
	pipelineOpen   uint64 = 0
	pipelineClosed uint64 = 1
)

// Pipeline is a bounded multi-producer multi-consumer FIFO of T.
//
// Items come out of Get in the order their Put calls completed. Blocking
// calls wait on one of two conditions sharing the pipeline mutex: input
// (space available) and output (data available). A waiter is signalled for
// every item or slot that becomes available while it is parked, so no
// wakeup is lost with several producers or consumers.
//
// Close is the only cancellation built in. It is idempotent and eager:
// items still queued are handed to the destructor, and Get reports the
// pipeline as finished even if a consumer never saw them.
//
// Use [NewPipeline] or [Build] to create one; the zero value is not usable.
type Pipeline[T any] struct {
	mu      sync.Mutex
	input   sync.Cond // space available
	output  sync.Cond // data available
	buf     []T
	head    int
	tail    int
	count   int
	putters int // blocked in Put
	getters int // blocked in Get
	policy  Policy
	destroy func(T)
	state   atomix.Uint64
}

// NewPipeline creates a pipeline holding up to size items.
//
// destroy, if non-nil, is called once for every item the pipeline discards
// rather than delivers: items evicted under PolicyDrop and items drained by
// Close. It is never called with the pipeline mutex held.
//
// Panics if size < 1.
func NewPipeline[T any](size int, policy Policy, destroy func(T)) *Pipeline[T] {
	if size < 1 {
		panic("syncx: pipeline size must be >= 1")
	}
	p := &Pipeline[T]{
		buf:     make([]T, size),
		policy:  policy,
		destroy: destroy,
	}
	p.input.L = &p.mu
	p.output.L = &p.mu
	return p
}

// Put adds item to the tail.
//
// Under PolicyWait it blocks while the pipeline is full. Under PolicyDrop
// it never blocks; a full pipeline evicts its oldest item instead.
// Returns false if the pipeline is closed before or while waiting, in which
// case item still belongs to the caller.
func (p *Pipeline[T]) Put(item T) bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	for p.fullLocked() && !p.IsClosed() {
		p.putters++
		p.input.Wait()
		p.putters--
	}
	if p.IsClosed() {
		p.mu.Unlock()
		return false
	}
	evicted, dropped := p.pushLocked(item)
	p.mu.Unlock()
	if dropped {
		p.discard(evicted)
	}
	return true
}

// PutContext is like Put but gives up when ctx is done.
// Returns ErrClosed or ctx.Err() when item was not enqueued.
func (p *Pipeline[T]) PutContext(ctx context.Context, item T) error {
	if p == nil {
		return ErrClosed
	}
	p.mu.Lock()
	stop := wakeOnDone(ctx, &p.mu, &p.input)
	defer stop()
	for p.fullLocked() && !p.IsClosed() {
		if err := ctx.Err(); err != nil {
			p.mu.Unlock()
			return err
		}
		p.putters++
		p.input.Wait()
		p.putters--
	}
	if p.IsClosed() {
		p.mu.Unlock()
		return ErrClosed
	}
	evicted, dropped := p.pushLocked(item)
	p.mu.Unlock()
	if dropped {
		p.discard(evicted)
	}
	return nil
}

// TryPut adds item without blocking.
// Returns ErrWouldBlock if a PolicyWait pipeline is full, ErrClosed once
// the pipeline is closed.
func (p *Pipeline[T]) TryPut(item T) error {
	if p == nil {
		return ErrClosed
	}
	p.mu.Lock()
	if p.IsClosed() {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.fullLocked() {
		p.mu.Unlock()
		return ErrWouldBlock
	}
	evicted, dropped := p.pushLocked(item)
	p.mu.Unlock()
	if dropped {
		p.discard(evicted)
	}
	return nil
}

// Get removes and returns the head item, blocking while the pipeline is
// empty. Returns (zero-value, false) once the pipeline is closed.
func (p *Pipeline[T]) Get() (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	p.mu.Lock()
	for p.count == 0 && !p.IsClosed() {
		p.getters++
		p.output.Wait()
		p.getters--
	}
	if p.IsClosed() {
		p.mu.Unlock()
		return zero, false
	}
	item := p.popLocked()
	p.mu.Unlock()
	return item, true
}

// GetContext is like Get but gives up when ctx is done.
// Returns ErrClosed or ctx.Err() when no item was taken.
func (p *Pipeline[T]) GetContext(ctx context.Context) (T, error) {
	var zero T
	if p == nil {
		return zero, ErrClosed
	}
	p.mu.Lock()
	stop := wakeOnDone(ctx, &p.mu, &p.output)
	defer stop()
	for p.count == 0 && !p.IsClosed() {
		if err := ctx.Err(); err != nil {
			p.mu.Unlock()
			return zero, err
		}
		p.getters++
		p.output.Wait()
		p.getters--
	}
	if p.IsClosed() {
		p.mu.Unlock()
		return zero, ErrClosed
	}
	item := p.popLocked()
	p.mu.Unlock()
	return item, nil
}

// TryGet removes the head item without blocking.
// Returns ErrWouldBlock if the pipeline is empty, ErrClosed once closed.
func (p *Pipeline[T]) TryGet() (T, error) {
	var zero T
	if p == nil {
		return zero, ErrClosed
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.IsClosed() {
		return zero, ErrClosed
	}
	if p.count == 0 {
		return zero, ErrWouldBlock
	}
	return p.popLocked(), nil
}

// Close closes the pipeline. Only the first call has any effect.
//
// The closing goroutine wakes every blocked Put and Get before taking the
// lock, yields once, then takes the lock, wakes again for waiters that were
// between their state check and their wait, and drains the remaining items
// into the destructor. Blocked and future Put/Get calls fail fast from then
// on.
func (p *Pipeline[T]) Close() {
	if p == nil {
		return
	}
	if !p.state.CompareAndSwapAcqRel(pipelineOpen, pipelineClosed) {
		return
	}
	p.input.Broadcast()
	p.output.Broadcast()
	sw := spin.Wait{}
	sw.Once()

	p.mu.Lock()
	p.input.Broadcast()
	p.output.Broadcast()
	drained := p.drainLocked()
	p.mu.Unlock()

	for _, item := range drained {
		p.destroy(item)
	}
}

// IsClosed reports whether Close has been called.
func (p *Pipeline[T]) IsClosed() bool {
	if p == nil {
		return false
	}
	return p.state.LoadAcquire() == pipelineClosed
}

// Destroy closes the pipeline and drops its ring storage.
// Later calls behave as on any closed pipeline.
//
// A concurrent Close may still be yielding before its drain when Destroy
// takes the lock, so Destroy drains whatever is left itself. Each item
// reaches the destructor exactly once, from whichever call popped it.
func (p *Pipeline[T]) Destroy() {
	if p == nil {
		return
	}
	p.Close()
	p.mu.Lock()
	drained := p.drainLocked()
	p.buf = nil
	p.head, p.tail = 0, 0
	p.mu.Unlock()

	for _, item := range drained {
		p.destroy(item)
	}
}

// Len returns a snapshot of the number of queued items.
func (p *Pipeline[T]) Len() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// Cap returns the pipeline capacity.
func (p *Pipeline[T]) Cap() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buf)
}

// Policy returns the overflow policy fixed at construction.
func (p *Pipeline[T]) Policy() Policy {
	if p == nil {
		return PolicyWait
	}
	return p.policy
}

// fullLocked reports whether Put must wait. A PolicyDrop pipeline never does.
func (p *Pipeline[T]) fullLocked() bool {
	return p.policy == PolicyWait && p.count == len(p.buf)
}

// pushLocked appends item, evicting the head first if the ring is full.
func (p *Pipeline[T]) pushLocked(item T) (evicted T, dropped bool) {
	size := len(p.buf)
	if p.count == size {
		evicted, dropped = p.buf[p.head], true
		var zero T
		p.buf[p.head] = zero
		p.head = (p.head + 1) % size
		p.count--
	}
	p.buf[p.tail] = item
	p.tail = (p.tail + 1) % size
	p.count++
	if p.getters > 0 {
		p.output.Signal()
	}
	return evicted, dropped
}

// popLocked removes the head item. The caller guarantees count > 0.
func (p *Pipeline[T]) popLocked() T {
	item := p.buf[p.head]
	var zero T
	p.buf[p.head] = zero
	p.head = (p.head + 1) % len(p.buf)
	p.count--
	if p.putters > 0 {
		p.input.Signal()
	}
	return item
}

// drainLocked empties the ring and returns the items that need the
// destructor. It returns nil when there is no destructor.
func (p *Pipeline[T]) drainLocked() []T {
	var drained []T
	if p.destroy != nil {
		drained = make([]T, 0, p.count)
	}
	for p.count > 0 {
		item := p.popLocked()
		if p.destroy != nil {
			drained = append(drained, item)
		}
	}
	return drained
}

func (p *Pipeline[T]) discard(item T) {
	if p.destroy != nil {
		p.destroy(item)
	}
}
