// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"context"
	"sync"
)

// CondLock is a fair shared/exclusive lock.
//
// CondLock is built from one mutex and three counters:
//
//	sharing  active shared holders
//	pending  exclusive requesters that have not been granted yet
//	waiting  shared requesters parked behind a pending exclusive request
//
// Exclusive requests take priority over new shared entrants: once any
// exclusive request is pending, [CondLock.Access] queues behind it. A
// continuous stream of readers therefore cannot starve a writer; the writer
// waits at most for the readers already inside to leave.
//
// Handoff between exclusive requesters wakes exactly one of them. Handoff
// to shared requesters wakes all of them, since any number may proceed
// together. The two kinds of waiter park on separate conditions sharing
// the one mutex, so waking one writer can never be absorbed by a reader.
//
// The exclusive section is bracketed by [CondLock.Modify] and
// [CondLock.Commit]; Modify returns with the internal mutex held.
//
// The zero value is an unlocked CondLock. A CondLock must not be copied
// after first use.
type CondLock struct {
	mu      sync.Mutex
	readers sync.Cond
	writers sync.Cond
	sharing uint
	pending uint
	waiting uint
}

// NewCondLock returns an unlocked CondLock.
func NewCondLock() *CondLock {
	l := &CondLock{}
	l.readers.L = &l.mu
	l.writers.L = &l.mu
	return l
}

func (l *CondLock) lock() {
	l.mu.Lock()
	if l.readers.L == nil {
		l.readers.L = &l.mu
		l.writers.L = &l.mu
	}
}

// Access acquires shared access.
// Blocks while any exclusive request is pending.
func (l *CondLock) Access() {
	if l == nil {
		return
	}
	l.lock()
	for l.pending > 0 {
		l.waiting++
		l.readers.Wait()
		l.waiting--
	}
	l.sharing++
	l.mu.Unlock()
}

// AccessContext is like Access but gives up when ctx is done.
// Returns ctx.Err() without holding shared access in that case.
func (l *CondLock) AccessContext(ctx context.Context) error {
	if l == nil {
		return nil
	}
	l.lock()
	stop := wakeOnDone(ctx, &l.mu, &l.readers)
	defer stop()
	for l.pending > 0 {
		if err := ctx.Err(); err != nil {
			l.mu.Unlock()
			return err
		}
		l.waiting++
		l.readers.Wait()
		l.waiting--
	}
	l.sharing++
	l.mu.Unlock()
	return nil
}

// Release releases shared access.
//
// The last shared holder hands off to one pending exclusive requester. With
// no exclusive request pending, parked shared requesters are all woken.
// Release without shared access held is a no-op.
func (l *CondLock) Release() {
	if l == nil {
		return
	}
	l.lock()
	if l.sharing > 0 {
		l.sharing--
		if l.sharing == 0 && l.pending > 0 {
			l.writers.Signal()
		} else if l.pending == 0 && l.waiting > 0 {
			l.readers.Broadcast()
		}
	}
	l.mu.Unlock()
}

// Modify acquires exclusive access.
//
// Modify registers as pending, which stops new shared entrants, then waits
// until every shared holder has released. It returns with the internal
// mutex held; the caller must end the section with [CondLock.Commit].
func (l *CondLock) Modify() {
	if l == nil {
		return
	}
	l.lock()
	l.pending++
	for l.sharing > 0 {
		l.writers.Wait()
	}
	l.pending--
}

// ModifyContext is like Modify but gives up when ctx is done.
// On success it returns nil with the mutex held, to be ended by Commit.
// On cancellation it returns ctx.Err() and holds nothing.
func (l *CondLock) ModifyContext(ctx context.Context) error {
	if l == nil {
		return nil
	}
	l.lock()
	stop := wakeOnDone(ctx, &l.mu, &l.writers)
	defer stop()
	l.pending++
	for l.sharing > 0 {
		if err := ctx.Err(); err != nil {
			l.pending--
			l.abandonLocked()
			l.mu.Unlock()
			return err
		}
		l.writers.Wait()
	}
	l.pending--
	return nil
}

// abandonLocked passes on any wakeup a cancelled exclusive requester may
// have consumed, and releases readers it was holding back.
func (l *CondLock) abandonLocked() {
	switch {
	case l.pending > 0 && l.sharing == 0:
		l.writers.Signal()
	case l.pending == 0 && l.waiting > 0:
		l.readers.Broadcast()
	}
}

// Commit releases exclusive access acquired by Modify.
//
// The next pending exclusive requester, if any, is woken alone; otherwise
// all parked shared requesters are woken. Commit must only be called by
// the goroutine that returned from Modify.
func (l *CondLock) Commit() {
	if l == nil {
		return
	}
	if l.pending > 0 {
		l.writers.Signal()
	} else if l.waiting > 0 {
		l.readers.Broadcast()
	}
	l.mu.Unlock()
}

// Shared runs fn with shared access held.
func (l *CondLock) Shared(fn func()) {
	l.Access()
	defer l.Release()
	fn()
}

// Exclusive runs fn with exclusive access held.
func (l *CondLock) Exclusive(fn func()) {
	l.Modify()
	defer l.Commit()
	fn()
}
