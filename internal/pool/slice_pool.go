package pool

import "sync"

// SlicePool is a pool of reusable []T buffers backing heap-promoted containers.
//
// Buffers whose capacity exceeds the max threshold are discarded on Put rather
// than retained, so one oversized container cannot pin memory in the pool.
// SlicePool is safe for concurrent use.
type SlicePool[T any] struct {
	pool       sync.Pool
	defaultCap int
	maxCap     int // 0 means unbounded
}

// NewSlicePool creates a pool handing out buffers of at least defaultCap
// capacity. A positive maxCap bounds the capacity of retained buffers.
func NewSlicePool[T any](defaultCap, maxCap int) *SlicePool[T] {
	if defaultCap < 0 {
		defaultCap = 0
	}
	if maxCap < 0 {
		maxCap = 0
	}

	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any {
				s := make([]T, 0, defaultCap)
				return &s
			},
		},
		defaultCap: defaultCap,
		maxCap:     maxCap,
	}
}

// Get returns an empty slice with capacity of at least minCap.
//
// If the pooled buffer is too small, a new one sized max(minCap, defaultCap)
// is allocated and the small one is dropped.
func (p *SlicePool[T]) Get(minCap int) []T {
	ptr, _ := p.pool.Get().(*[]T)

	var s []T
	if ptr != nil {
		s = (*ptr)[:0]
	}

	if cap(s) < minCap {
		s = make([]T, 0, max(minCap, p.defaultCap))
	}

	return s
}

// Put returns s to the pool. Every slot up to cap(s) is zeroed first so the
// pool never keeps element values reachable.
func (p *SlicePool[T]) Put(s []T) {
	if s == nil {
		return
	}

	if p.maxCap > 0 && cap(s) > p.maxCap {
		return
	}

	clear(s[:cap(s)])
	s = s[:0]
	p.pool.Put(&s)
}

// DefaultCap returns the minimum capacity of buffers produced by the pool.
func (p *SlicePool[T]) DefaultCap() int {
	return p.defaultCap
}

// MaxCap returns the retention threshold, 0 when unbounded.
func (p *SlicePool[T]) MaxCap() int {
	return p.maxCap
}
