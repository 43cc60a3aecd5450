// Package vec provides Vec, a growable sequence that keeps its first N
// elements inside the container itself and moves to a heap-allocated slice
// only when it has to hold more than N.
//
// # Inline Capacity
//
// The inline capacity is fixed at compile time by the second type parameter,
// an array type whose length is N:
//
//	var v vec.Vec[int, [4]int] // up to 4 ints without allocating
//
//	v.Push(1)
//	v.Push(2)
//	v.IsInline() // true
//
// Allowed lengths are listed by the Inline constraint.
//
// # Storage States
//
// A Vec is always in exactly one of two states:
//
//   - Inline: elements live in the embedded array, Len() <= N, Cap() == N.
//   - Heap: elements live in an owned slice, growth is delegated to append.
//
// The switch from Inline to Heap ("promotion") happens the first time an
// insertion needs more than N slots. It is one-way: a heap-backed Vec stays
// heap-backed after Pop, Remove, Clear or Truncate, even at length zero, so a
// workload oscillating around N does not copy back and forth.
//
// # Uniform View
//
// Slice returns the live elements as one contiguous []T in both states, so
// the standard slices package works directly:
//
//	slices.Sort(v.Slice())
//	i, found := slices.BinarySearch(v.Slice(), 3)
//
// Any slice, pointer or iterator obtained from a Vec is invalidated by the
// next call that adds elements, because that call may promote or reallocate.
//
// # Errors
//
// Out-of-range positions are precondition violations and panic with an error
// wrapping errs.ErrIndexOutOfRange or errs.ErrInvalidRange, like indexing a
// Go slice. Popping an empty Vec is not an error; Pop reports ok == false.
//
// # Ownership
//
// A Vec is not safe for concurrent mutation and must not be copied by value
// after first use, because a copy would share the heap buffer. Use Clone.
package vec
