// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "context"

// Queue is the combined producer-consumer interface of a closable
// blocking FIFO. [Pipeline] implements it.
//
// Example:
//
//	var q syncx.Queue[*Frame] = syncx.NewPipeline[*Frame](64, syncx.PolicyWait, nil)
//	go serve(q) // consumer side only needs Consumer[*Frame]
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Close()
	IsClosed() bool
	Len() int
	Cap() int
}

// Producer is the interface for enqueueing items.
//
// Ownership of an item passes to the queue only when the call reports
// success. On failure the caller still owns it.
type Producer[T any] interface {
	// Put enqueues item, blocking as the overflow policy dictates.
	// Returns false once the queue is closed.
	Put(item T) bool

	// TryPut enqueues item without blocking.
	// Returns ErrWouldBlock if it would block, ErrClosed once closed.
	TryPut(item T) error

	// PutContext is Put bounded by ctx.
	// Returns ErrClosed or ctx.Err() on failure.
	PutContext(ctx context.Context, item T) error
}

// Consumer is the interface for dequeueing items.
type Consumer[T any] interface {
	// Get dequeues the head item, blocking while empty.
	// Returns (zero-value, false) once the queue is closed.
	Get() (T, bool)

	// TryGet dequeues without blocking.
	// Returns ErrWouldBlock if empty, ErrClosed once closed.
	TryGet() (T, error)

	// GetContext is Get bounded by ctx.
	// Returns ErrClosed or ctx.Err() on failure.
	GetContext(ctx context.Context) (T, error)
}

// Allocator is the allocation interface of the bump allocators.
// [Pager] and [LockedPager] implement it.
//
// Memory handed out by an Allocator is not freed individually; its
// lifetime is managed by the allocator's owner.
type Allocator interface {
	// Alloc returns size zeroed bytes.
	Alloc(size int) ([]byte, error)

	// DupString copies text into allocator memory.
	DupString(text string) (string, error)
}

var (
	_ Queue[any] = (*Pipeline[any])(nil)
	_ Allocator  = (*Pager)(nil)
	_ Allocator  = (*LockedPager)(nil)
)
