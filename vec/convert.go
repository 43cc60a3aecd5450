package vec

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/smallvec/errs"
)

// WithCapacity returns an empty Vec able to hold n elements without
// reallocating: inline when n <= N, otherwise heap-backed from the start.
// It panics if n is negative.
func WithCapacity[T any, A Inline[T]](n int) *Vec[T, A] {
	if n < 0 {
		panic(fmt.Errorf("%w: capacity %d", errs.ErrInvalidCapacity, n))
	}

	v := &Vec[T, A]{}
	if n > len(v.buf) {
		v.heap = make([]T, 0, n)
		v.onHeap = true
	}

	return v
}

// FromValues copies values into a new Vec. The result is inline when
// len(values) <= N and heap-backed with exactly len(values) capacity otherwise.
func FromValues[T any, A Inline[T]](values ...T) *Vec[T, A] {
	v := &Vec[T, A]{}
	if len(values) <= len(v.buf) {
		v.n = copy(v.inline(), values)
		return v
	}

	v.heap = slices.Clone(values)
	v.onHeap = true

	return v
}

// FromArray copies the fixed-size array src into a new Vec. The source length
// M may differ from the inline capacity N: M <= N yields an inline Vec, M > N
// a heap-backed one holding all M elements.
//
//	v := vec.FromArray[int, [2]int]([3]int{1, 2, 3}) // heap-backed, Len() == 3
func FromArray[T any, A Inline[T], M Inline[T]](src M) *Vec[T, A] {
	return FromValues[T, A](arraySlice[T](&src)...)
}

// FromSlice wraps s as a heap-backed Vec without copying, whatever its length.
// The Vec takes ownership of s; the caller must not use s afterwards.
func FromSlice[T any, A Inline[T]](s []T) *Vec[T, A] {
	return &Vec[T, A]{heap: s, onHeap: true}
}

// Collect builds a Vec from every element of seq.
func Collect[T any, A Inline[T]](seq iter.Seq[T]) *Vec[T, A] {
	return CollectN[T, A](seq, 0)
}

// CollectN builds a Vec from seq using hint as the expected element count:
// a hint that fits inline starts inline, a larger one preallocates heap
// storage. If seq yields more than hint elements the Vec still promotes as
// needed. A negative hint is treated as zero.
func CollectN[T any, A Inline[T]](seq iter.Seq[T], hint int) *Vec[T, A] {
	v := WithCapacity[T, A](max(hint, 0))
	v.Extend(seq)

	return v
}

// Clone returns an independent copy in the same storage state. A clone of a
// heap-backed Vec is heap-backed even when empty.
func (v *Vec[T, A]) Clone() *Vec[T, A] {
	c := &Vec[T, A]{pool: v.pool}
	if !v.onHeap {
		c.buf = v.buf
		c.n = v.n

		return c
	}

	c.heap = slices.Clone(v.heap)
	if c.heap == nil {
		c.heap = []T{}
	}
	c.onHeap = true

	return c
}
