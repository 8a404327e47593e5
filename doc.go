// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package syncx provides blocking synchronization and memory-ownership
// primitives for building network services.
//
// The package offers:
//
//   - [Pipeline]: bounded MPMC FIFO with WAIT or DROP backpressure and eager close
//   - [CondLock]: fair shared/exclusive lock that does not starve writers
//   - [Semaphore]: counting semaphore
//   - [WaitGroup]: reusable countdown barrier
//   - [Pager]: page-based bump allocator with bulk reset
//   - [Shared]: atomically reference-counted value with no single owner
//
// Every blocking primitive is a mutex plus condition variables guarding its
// own state. No primitive takes another's lock, so they compose without
// lock-order concerns.
//
// # Quick Start
//
// Direct constructor:
//
//	p := syncx.NewPipeline[*Buffer](256, syncx.PolicyWait, (*Buffer).Free)
//
// Builder API:
//
//	p := syncx.Build[*Buffer](syncx.New(256), (*Buffer).Free)          // → WAIT
//	p := syncx.Build[Sample](syncx.New(64).Drop(), nil)                 // → DROP
//
// # Pipeline
//
// A reader goroutine queuing receive buffers for a processing goroutine:
//
//	rx := syncx.NewPipeline[*Buffer](128, syncx.PolicyWait, (*Buffer).Free)
//
//	go func() { // Reader
//	    for {
//	        buf := readFrame(conn)
//	        if !rx.Put(buf) {
//	            buf.Free() // closed: buf is still ours
//	            return
//	        }
//	    }
//	}()
//
//	go func() { // Processor
//	    for {
//	        buf, ok := rx.Get()
//	        if !ok {
//	            return // closed
//	        }
//	        process(buf)
//	        buf.Free()
//	    }
//	}()
//
//	// Shutdown: both goroutines return, queued buffers are freed.
//	rx.Close()
//
// Overflow policy is fixed at construction:
//
//	PolicyWait  Put blocks while full             lossless backpressure
//	PolicyDrop  Put evicts the oldest unread item bounded staleness
//
// The pipeline keeps no drop count. Callers that need one count inside the
// destructor.
//
// # Close Semantics
//
// Close is idempotent and eager. The first call wakes every blocked Put and
// Get, then drains the remaining items into the destructor. After Close:
//
//   - Put returns false; the item still belongs to the caller
//   - Get returns (zero-value, false), even if items had been queued
//   - TryPut, TryGet, PutContext and GetContext return [ErrClosed]
//
// A consumer that must see every item has to stop producers and empty the
// pipeline before calling Close:
//
//	prodWg.Wait()
//	for p.Len() > 0 {
//	    item, _ := p.Get()
//	    handle(item)
//	}
//	p.Close()
//
// # Fair Shared/Exclusive Access
//
// [CondLock] gives exclusive requests priority over new shared entrants:
//
//	var lock syncx.CondLock
//
//	lock.Access()   // shared
//	read(table)
//	lock.Release()
//
//	lock.Modify()   // exclusive
//	table.Insert(k, v)
//	lock.Commit()
//
// Once Modify is waiting, Access calls queue behind it, so a writer waits
// only for readers already inside.
//
// # Memory Ownership
//
// [Pager] serves many short-lived allocations from a few pages and frees
// them all at once:
//
//	pg := syncx.NewPager(4096, 16)
//	for line := range lines {
//	    key, _ := pg.DupString(line.Key)
//	    val, _ := pg.Alloc(len(line.Value))
//	    ...
//	}
//	pg.Recycle() // every allocation ends here
//
// Allocations never span pages: a request larger than the page size fails
// with [ErrTooLarge] even on an empty pager, while [ErrPagerExhausted] means
// the page limit is reached and a Recycle or Reset would make room.
//
// [Shared] backs payloads that outlive the goroutine that produced them:
//
//	blk := syncx.MakeSharedBytes(1500)
//	p.Put(blk.Retain())  // consumer calls Release when done
//	blk = blk.Release()  // producer's reference; nil if it was the last
//
// # Deadlines
//
// None of the primitives has a timeout of its own. The Context variants
// ([Pipeline.PutContext], [Pipeline.GetContext], [Semaphore.AcquireContext],
// [WaitGroup.WaitContext], [CondLock.AccessContext], [CondLock.ModifyContext])
// give up when the context is done. Use [context.WithDeadline] for an
// absolute deadline:
//
//	ctx, cancel := context.WithDeadline(ctx, deadline)
//	defer cancel()
//	item, err := p.GetContext(ctx)
//	switch {
//	case err == nil:
//	    handle(item)
//	case syncx.IsClosed(err):
//	    return
//	default: // ctx.Err()
//	    retry()
//	}
//
// # Error Handling
//
// Nothing panics after construction; failures are return values:
//
//	ErrWouldBlock      TryPut/TryGet cannot proceed now (alias of iox.ErrWouldBlock)
//	ErrClosed          pipeline closed, a normal termination signal
//	ErrTooLarge        allocation larger than a page, never retryable
//	ErrPagerExhausted  page limit reached
//	ErrPagerReleased   pager used after Release
//
// Calls on a nil *Pipeline, *CondLock, *Semaphore, *WaitGroup or *Pager
// are no-ops returning false, zero or a closed/released error. [Shared] is
// the exception: validity after the final Release is the caller's contract.
//
// # Thread Safety
//
// Pipeline, CondLock, Semaphore, WaitGroup and LockedPager are safe for
// concurrent use. Pager is not; share it through [LockedPager] or external
// serialization. Shared synchronizes only its reference count.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [code.hybscloud.com/spin] for the yield in Pipeline.Close.
package syncx
