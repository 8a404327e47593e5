// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/syncx"
)

// =============================================================================
// WaitGroup
// =============================================================================

// TestWaitGroupDoneCompletesOnce tests that exactly one Done reports
// completion.
func TestWaitGroupDoneCompletesOnce(t *testing.T) {
	const n = 16
	var wg syncx.WaitGroup
	wg.Add(n)

	results := make(chan bool, n)
	for range n {
		go func() {
			results <- wg.Done()
		}()
	}

	completed := 0
	for range n {
		if <-results {
			completed++
		}
	}
	if completed != 1 {
		t.Fatalf("Done returned true %d times, want 1", completed)
	}
	if wg.Count() != 0 {
		t.Fatalf("Count: got %d, want 0", wg.Count())
	}
}

// TestWaitGroupDoneAtZero tests that Done on an empty group is a no-op.
func TestWaitGroupDoneAtZero(t *testing.T) {
	var wg syncx.WaitGroup
	if wg.Done() {
		t.Fatal("Done at zero: got true")
	}
	wg.Add(1)
	if !wg.Done() {
		t.Fatal("Done 1 -> 0: got false")
	}
	if wg.Done() {
		t.Fatal("Done after completion: got true")
	}
	wg.Wait()
}

// TestWaitGroupWaitBlocks tests that Wait returns only after the last Done.
func TestWaitGroupWaitBlocks(t *testing.T) {
	var wg syncx.WaitGroup
	wg.Add(2)

	waited := make(chan struct{})
	go func() {
		wg.Wait()
		close(waited)
	}()

	wg.Done()
	select {
	case <-waited:
		t.Fatal("Wait returned with one completion outstanding")
	case <-time.After(10 * time.Millisecond):
	}

	wg.Done()
	select {
	case <-waited:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait not woken by last Done")
	}
}

// TestWaitGroupReuse tests several rounds on one group.
func TestWaitGroupReuse(t *testing.T) {
	var wg syncx.WaitGroup
	for round := range 5 {
		wg.Add(3)
		for range 3 {
			go wg.Done()
		}
		if err := wg.WaitContext(context.Background()); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if wg.Count() != 0 {
			t.Fatalf("round %d: Count %d, want 0", round, wg.Count())
		}
	}
}

// TestWaitGroupWaitContext tests that WaitContext gives up at its deadline
// without disturbing the counter.
func TestWaitGroupWaitContext(t *testing.T) {
	var wg syncx.WaitGroup
	wg.Add(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := wg.WaitContext(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("WaitContext: got %v, want context.DeadlineExceeded", err)
	}
	if wg.Count() != 1 {
		t.Fatalf("Count: got %d, want 1", wg.Count())
	}
	wg.Done()
	if err := wg.WaitContext(ctx); err != nil {
		t.Fatalf("WaitContext on empty group: %v", err)
	}
}

// TestWaitGroupNil tests that a nil WaitGroup is a no-op.
func TestWaitGroupNil(t *testing.T) {
	var wg *syncx.WaitGroup
	wg.Add(1)
	if wg.Done() {
		t.Fatal("Done: got true")
	}
	wg.Wait()
	if wg.Count() != 0 {
		t.Fatal("Count: got non-zero")
	}
}
