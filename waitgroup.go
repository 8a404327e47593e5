// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"context"
	"sync"
)

// WaitGroup is a countdown barrier.
//
// Producers register expected completions with Add; each completion calls
// Done; Wait blocks until the counter returns to zero. A WaitGroup is
// reusable once it reaches zero.
//
// Unlike [sync.WaitGroup], Done at zero is a no-op rather than a panic,
// and Done reports which call completed the group. Ordering Add against a
// concurrent Wait on a reused group is the caller's responsibility.
//
// The zero value is an empty WaitGroup.
type WaitGroup struct {
	mu    sync.Mutex
	cond  sync.Cond
	count uint
}

func (wg *WaitGroup) lock() {
	wg.mu.Lock()
	if wg.cond.L == nil {
		wg.cond.L = &wg.mu
	}
}

// Add registers n expected completions.
func (wg *WaitGroup) Add(n uint) {
	if wg == nil || n == 0 {
		return
	}
	wg.lock()
	wg.count += n
	wg.mu.Unlock()
}

// Done records one completion. It returns true for the call that brings
// the counter to zero, which also wakes every waiter.
// Done on an empty group does nothing and returns false.
func (wg *WaitGroup) Done() bool {
	if wg == nil {
		return false
	}
	wg.lock()
	defer wg.mu.Unlock()
	if wg.count == 0 {
		return false
	}
	wg.count--
	if wg.count > 0 {
		return false
	}
	wg.cond.Broadcast()
	return true
}

// Wait blocks until the counter is zero.
func (wg *WaitGroup) Wait() {
	if wg == nil {
		return
	}
	wg.lock()
	for wg.count > 0 {
		wg.cond.Wait()
	}
	wg.mu.Unlock()
}

// WaitContext is like Wait but gives up when ctx is done.
func (wg *WaitGroup) WaitContext(ctx context.Context) error {
	if wg == nil {
		return nil
	}
	wg.lock()
	stop := wakeOnDone(ctx, &wg.mu, &wg.cond)
	defer stop()
	for wg.count > 0 {
		if err := ctx.Err(); err != nil {
			wg.mu.Unlock()
			return err
		}
		wg.cond.Wait()
	}
	wg.mu.Unlock()
	return nil
}

// Count returns a snapshot of the outstanding completions.
func (wg *WaitGroup) Count() uint {
	if wg == nil {
		return 0
	}
	wg.lock()
	defer wg.mu.Unlock()
	return wg.count
}
