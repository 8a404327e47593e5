// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"context"
	"sync"
)

// Semaphore is a counting semaphore.
//
// At most Limit permits are held at any instant. Acquire blocks while all
// permits are held; Release returns one and wakes a single waiter.
//
// Unlike [golang.org/x/sync/semaphore.Weighted], releasing more permits
// than are held is not an error: the held count floors at zero.
type Semaphore struct {
	mu    sync.Mutex
	cond  sync.Cond
	count uint // permits
	used  uint // held
	waits uint // blocked in Acquire
}

// NewSemaphore creates a semaphore with limit permits.
// A zero limit makes every Acquire block until its context is done.
func NewSemaphore(limit uint) *Semaphore {
	s := &Semaphore{count: limit}
	s.cond.L = &s.mu
	return s
}

func (s *Semaphore) lock() {
	s.mu.Lock()
	if s.cond.L == nil {
		s.cond.L = &s.mu
	}
}

// Acquire takes one permit, blocking while none is free.
func (s *Semaphore) Acquire() {
	if s == nil {
		return
	}
	s.lock()
	for s.used >= s.count {
		s.waits++
		s.cond.Wait()
		s.waits--
	}
	s.used++
	s.mu.Unlock()
}

// AcquireContext is like Acquire but gives up when ctx is done.
// Returns ctx.Err() without a permit in that case.
func (s *Semaphore) AcquireContext(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.lock()
	stop := wakeOnDone(ctx, &s.mu, &s.cond)
	defer stop()
	for s.used >= s.count {
		if err := ctx.Err(); err != nil {
			s.mu.Unlock()
			return err
		}
		s.waits++
		s.cond.Wait()
		s.waits--
	}
	s.used++
	s.mu.Unlock()
	return nil
}

// TryAcquire takes one permit if one is free, without blocking.
func (s *Semaphore) TryAcquire() bool {
	if s == nil {
		return false
	}
	s.lock()
	defer s.mu.Unlock()
	if s.used >= s.count {
		return false
	}
	s.used++
	return true
}

// Release returns one permit and wakes one waiter.
// Excess releases leave the held count at zero.
func (s *Semaphore) Release() {
	if s == nil {
		return
	}
	s.lock()
	if s.used > 0 {
		s.used--
	}
	if s.waits > 0 {
		s.cond.Signal()
	}
	s.mu.Unlock()
}

// Limit returns the number of permits.
func (s *Semaphore) Limit() uint {
	if s == nil {
		return 0
	}
	return s.count
}

// Used returns a snapshot of the permits currently held.
func (s *Semaphore) Used() uint {
	if s == nil {
		return 0
	}
	s.lock()
	defer s.mu.Unlock()
	return s.used
}
