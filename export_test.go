// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// CondLockCounters returns the lock counters. It takes the internal mutex,
// so it blocks while an exclusive section is in progress.
func CondLockCounters(l *CondLock) (sharing, pending, waiting uint) {
	l.lock()
	defer l.mu.Unlock()
	return l.sharing, l.pending, l.waiting
}

// SemaphoreWaiters returns the number of goroutines blocked in Acquire.
func SemaphoreWaiters(s *Semaphore) uint {
	s.lock()
	defer s.mu.Unlock()
	return s.waits
}

// PipelineWaiters returns the number of goroutines blocked in Put and Get.
func PipelineWaiters[T any](p *Pipeline[T]) (putters, getters int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.putters, p.getters
}
