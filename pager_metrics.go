// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// PagerMetrics is a snapshot of pager statistics.
type PagerMetrics struct {
	PageSize    int     // Bytes per page
	Limit       int     // Max pages, 0 = unbounded
	Pages       int     // Pages held (active + free)
	Active      int     // Pages on the chain
	Free        int     // Rewound pages awaiting reuse
	InUse       int     // Bytes handed out from active pages
	Capacity    int     // Bytes held across all pages
	Utilization float64 // InUse / Capacity (0.0-1.0)
}

// PageSize returns the bytes per page, which is also the largest
// allocation the pager can serve.
func (p *Pager) PageSize() int {
	if p == nil {
		return 0
	}
	return p.size
}

// Pages returns the number of pages held, active and free.
func (p *Pager) Pages() int {
	if p == nil {
		return 0
	}
	return len(p.pages)
}

// InUse returns the number of bytes handed out since the last
// Recycle or Reset.
func (p *Pager) InUse() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, i := range p.chain {
		n += p.pages[i].used
	}
	return n
}

// Capacity returns the total bytes held across all pages.
func (p *Pager) Capacity() int {
	if p == nil {
		return 0
	}
	return len(p.pages) * p.size
}

// Metrics returns a snapshot of pager statistics.
func (p *Pager) Metrics() PagerMetrics {
	if p == nil {
		return PagerMetrics{}
	}
	m := PagerMetrics{
		PageSize: p.size,
		Limit:    p.limit,
		Pages:    len(p.pages),
		Active:   len(p.chain),
		Free:     len(p.free),
		InUse:    p.InUse(),
		Capacity: p.Capacity(),
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.InUse) / float64(m.Capacity)
	}
	return m
}
