package vec

import (
	"fmt"
	"slices"

	"github.com/arloliu/smallvec/errs"
	"github.com/arloliu/smallvec/internal/pool"
)

// Vec is a sequence of T with inline capacity len(A).
//
// The zero value is an empty inline Vec ready to use.
type Vec[T any, A Inline[T]] struct {
	buf    A // inline slots; slots >= n hold zero values
	n      int
	heap   []T
	onHeap bool

	pool *pool.SlicePool[T] // optional source of heap buffers
}

// inline returns all N inline slots.
func (v *Vec[T, A]) inline() []T {
	return arraySlice[T](&v.buf)
}

// InlineCap returns N, the number of elements the Vec can hold without
// allocating.
func (v *Vec[T, A]) InlineCap() int {
	return len(v.buf)
}

// Len returns the number of live elements.
func (v *Vec[T, A]) Len() int {
	if v.onHeap {
		return len(v.heap)
	}

	return v.n
}

// Cap returns N while inline, and the heap buffer capacity once promoted.
func (v *Vec[T, A]) Cap() int {
	if v.onHeap {
		return cap(v.heap)
	}

	return len(v.buf)
}

// IsEmpty reports whether Len() == 0.
func (v *Vec[T, A]) IsEmpty() bool {
	return v.Len() == 0
}

// IsInline reports whether the elements are still stored in the inline array.
func (v *Vec[T, A]) IsInline() bool {
	return !v.onHeap
}

// Slice returns the live elements as a contiguous slice aliasing the Vec's
// storage. The slice's capacity equals its length, so appending to it never
// writes into the Vec.
func (v *Vec[T, A]) Slice() []T {
	if v.onHeap {
		return v.heap[:len(v.heap):len(v.heap)]
	}

	return v.inline()[:v.n:v.n]
}

// promote moves the live inline prefix into a heap buffer with room for at
// least extra more elements, appends tail, and switches the Vec to the Heap
// state. tail may alias the inline array.
func (v *Vec[T, A]) promote(extra int, tail []T) {
	want := max(v.n+max(extra, len(tail)), 2*len(v.buf))

	var h []T
	if v.pool != nil {
		h = v.pool.Get(want)
	} else {
		h = make([]T, 0, want)
	}

	live := v.inline()[:v.n]
	h = append(h, live...)
	h = append(h, tail...)
	clear(live)

	v.heap = h
	v.n = 0
	v.onHeap = true
}

// grow guarantees room for extra more elements, promoting if the inline array
// cannot hold them.
func (v *Vec[T, A]) grow(extra int) {
	if extra <= 0 {
		return
	}

	if v.onHeap {
		v.heap = slices.Grow(v.heap, extra)
		return
	}

	if v.n+extra > len(v.buf) {
		v.promote(extra, nil)
	}
}

func indexError(index, length int) error {
	return fmt.Errorf("%w: index %d with length %d", errs.ErrIndexOutOfRange, index, length)
}

func rangeError(lo, hi, length int) error {
	return fmt.Errorf("%w: [%d:%d] with length %d", errs.ErrInvalidRange, lo, hi, length)
}
