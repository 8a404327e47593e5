// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"unicode/utf8"
	"unsafe"
)

// page is one fixed-size block of pager memory.
type page struct {
	buf  []byte
	used int // bump cursor, <= len(buf)
}

func (pg *page) take(n int) []byte {
	b := pg.buf[pg.used : pg.used+n : pg.used+n]
	pg.used += n
	return b
}

// Pager is a page-based bump allocator.
//
// Memory is handed out from a chain of fixed-size pages. Allocations are
// never freed individually and never span pages; their lifetime ends when
// the pager is recycled, reset or released. This suits bulk short-lived
// allocations such as line and record buffers during parsing.
//
// Pages are tracked by index: every page lives in pages and its index is in
// exactly one of chain (active, in allocation order) or free (rewound and
// waiting for reuse).
//
// Pager is not safe for concurrent use. Wrap it in a [LockedPager] or
// serialize access externally when it is shared between goroutines.
type Pager struct {
	pages    []page
	chain    []int
	free     []int
	size     int // bytes per page
	limit    int // max pages, 0 = unbounded
	released bool
}

// NewPager creates a pager with pages of pageSize bytes, holding at most
// maxPages pages at once. maxPages == 0 means unbounded.
//
// Panics if pageSize < 1 or maxPages < 0.
func NewPager(pageSize, maxPages int) *Pager {
	if pageSize < 1 {
		panic("syncx: page size must be >= 1")
	}
	if maxPages < 0 {
		panic("syncx: max pages must be >= 0")
	}
	return &Pager{size: pageSize, limit: maxPages}
}

// Alloc returns size zeroed bytes of pager memory.
//
// Active pages are scanned in chain order for room; when none fits, a page
// is taken from the free list, or from the heap while under the page limit.
// The returned slice has len and cap equal to size.
//
// Returns (nil, nil) for size <= 0, ErrTooLarge when size exceeds a page,
// ErrPagerExhausted when the page limit is reached, and ErrPagerReleased
// after Release.
func (p *Pager) Alloc(size int) ([]byte, error) {
	if p == nil || p.released {
		return nil, ErrPagerReleased
	}
	if size <= 0 {
		return nil, nil
	}
	if size > p.size {
		return nil, ErrTooLarge
	}
	for _, i := range p.chain {
		if pg := &p.pages[i]; pg.used+size <= p.size {
			return pg.take(size), nil
		}
	}
	i, ok := p.request()
	if !ok {
		return nil, ErrPagerExhausted
	}
	return p.pages[i].take(size), nil
}

// DupString copies text into pager memory and returns the copy.
//
// Text longer than one page is truncated to at most the page size, backing
// off to a rune boundary so a multi-byte UTF-8 sequence is never split.
// The copy shares the pager's lifetime: it must not be used after the
// pager is recycled, reset or released.
func (p *Pager) DupString(text string) (string, error) {
	if p == nil || p.released {
		return "", ErrPagerReleased
	}
	if len(text) > p.size {
		n := p.size
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		text = text[:n]
	}
	if len(text) == 0 {
		return "", nil
	}
	b, err := p.Alloc(len(text))
	if err != nil {
		return "", err
	}
	copy(b, text)
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

// request moves a page onto the chain tail, preferring the free list.
func (p *Pager) request() (int, bool) {
	var i int
	switch {
	case len(p.free) > 0:
		i = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
	case p.limit > 0 && len(p.pages) >= p.limit:
		return 0, false
	default:
		p.pages = append(p.pages, page{buf: make([]byte, p.size)})
		i = len(p.pages) - 1
	}
	p.chain = append(p.chain, i)
	return i, true
}

// Recycle rewinds every active page onto the free list.
//
// Page memory is kept and zeroed for reuse, so the page count and the page
// limit accounting are unchanged. Every slice handed out before Recycle
// becomes invalid.
func (p *Pager) Recycle() {
	if p == nil || p.released {
		return
	}
	for _, i := range p.chain {
		pg := &p.pages[i]
		clear(pg.buf[:pg.used])
		pg.used = 0
		p.free = append(p.free, i)
	}
	p.chain = p.chain[:0]
}

// Reset releases every page, active and free, back to the heap.
// The pager stays usable and starts again from zero pages.
func (p *Pager) Reset() {
	if p == nil {
		return
	}
	p.pages = nil
	p.chain = nil
	p.free = nil
}

// Release resets the pager and makes it unusable.
// Subsequent allocations return ErrPagerReleased.
func (p *Pager) Release() {
	if p == nil {
		return
	}
	p.Reset()
	p.released = true
}
