// Package smallvec provides a sequence container that stores a small,
// compile-time fixed number of elements inline and moves to a growable heap
// slice only when it outgrows that inline capacity.
//
// Small sequences are everywhere in real programs: the arguments of a call,
// the labels of a metric, the children of a syntax node. Most of them hold a
// handful of elements, yet a plain []T allocates for every one. A smallvec
// Vec keeps the first N elements inside the value itself and pays for an
// allocation only past N.
//
// # Core Features
//
//   - Inline storage for up to N elements, N fixed by an array type parameter
//   - One-way promotion to heap storage on overflow, never demoting back
//   - A uniform []T view in both states, usable with the slices package
//   - Order-preserving Insert and Remove
//   - range-over-func iterators (All, Values, Backward, Drain)
//   - Optional heap buffer pooling and xxHash64 sequence fingerprints
//
// # Basic Usage
//
//	import "github.com/arloliu/smallvec"
//
//	v := smallvec.Of(1, 2, 3)  // inline capacity DefaultInlineCap
//	v.Push(4)
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// Choosing the inline capacity explicitly:
//
//	var labels vec.Vec[string, [4]string]
//	labels.Push("region")
//
// # Package Structure
//
// This package provides top-level wrappers around the vec package for the
// most common cases. For the full API, including pooling options, use the vec
// package directly.
package smallvec

import (
	"iter"

	"github.com/arloliu/smallvec/vec"
)

// DefaultInlineCap is the inline capacity of the vectors created by the
// Default helpers in this package.
const DefaultInlineCap = 8

// NewDefault returns an empty vector with DefaultInlineCap inline slots.
func NewDefault[T any]() *vec.Vec[T, [DefaultInlineCap]T] {
	return &vec.Vec[T, [DefaultInlineCap]T]{}
}

// Of returns a vector with DefaultInlineCap inline slots holding a copy of
// values. More than DefaultInlineCap values produce a heap-backed vector.
func Of[T any](values ...T) *vec.Vec[T, [DefaultInlineCap]T] {
	return vec.FromValues[T, [DefaultInlineCap]T](values...)
}

// New creates an empty vector with inline capacity len(A), configured by
// opts. See vec.New.
func New[T any, A vec.Inline[T]](opts ...vec.Option) (*vec.Vec[T, A], error) {
	return vec.New[T, A](opts...)
}

// WithCapacity returns an empty vector able to hold n elements without
// reallocating. See vec.WithCapacity.
func WithCapacity[T any, A vec.Inline[T]](n int) *vec.Vec[T, A] {
	return vec.WithCapacity[T, A](n)
}

// FromArray copies a fixed-size array into a new vector. See vec.FromArray.
func FromArray[T any, A vec.Inline[T], M vec.Inline[T]](src M) *vec.Vec[T, A] {
	return vec.FromArray[T, A](src)
}

// FromSlice wraps s as a heap-backed vector without copying. See
// vec.FromSlice.
func FromSlice[T any, A vec.Inline[T]](s []T) *vec.Vec[T, A] {
	return vec.FromSlice[T, A](s)
}

// Collect gathers every element of seq into a default-capacity vector.
func Collect[T any](seq iter.Seq[T]) *vec.Vec[T, [DefaultInlineCap]T] {
	return vec.Collect[T, [DefaultInlineCap]T](seq)
}
