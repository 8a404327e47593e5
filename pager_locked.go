// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "sync"

// LockedPager is a mutex-serialized Pager for sharing between goroutines.
//
// Only the allocator bookkeeping is serialized. The bytes handed out are
// owned by whoever allocated them.
type LockedPager struct {
	mu sync.Mutex
	p  *Pager
}

// NewLockedPager creates a LockedPager; arguments are as for NewPager.
func NewLockedPager(pageSize, maxPages int) *LockedPager {
	return &LockedPager{p: NewPager(pageSize, maxPages)}
}

// Alloc is Pager.Alloc under the lock.
func (l *LockedPager) Alloc(size int) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Alloc(size)
}

// DupString is Pager.DupString under the lock.
func (l *LockedPager) DupString(text string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.DupString(text)
}

// Recycle is Pager.Recycle under the lock.
func (l *LockedPager) Recycle() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Recycle()
}

// Reset is Pager.Reset under the lock.
func (l *LockedPager) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Reset()
}

// Release is Pager.Release under the lock.
func (l *LockedPager) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Release()
}

// Metrics is Pager.Metrics under the lock.
func (l *LockedPager) Metrics() PagerMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Metrics()
}
