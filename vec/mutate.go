package vec

import (
	"fmt"
	"iter"

	"github.com/arloliu/smallvec/errs"
)

// Push appends value, promoting to heap storage if the inline array is full.
func (v *Vec[T, A]) Push(value T) {
	if !v.onHeap {
		if v.n < len(v.buf) {
			v.buf[v.n] = value
			v.n++

			return
		}
		v.promote(1, nil)
	}

	v.heap = append(v.heap, value)
}

// Pop removes and returns the last element. It returns the zero value and
// false if the Vec is empty. The vacated slot is reset to the zero value.
func (v *Vec[T, A]) Pop() (T, bool) {
	var zero T

	if v.onHeap {
		last := len(v.heap) - 1
		if last < 0 {
			return zero, false
		}
		value := v.heap[last]
		v.heap[last] = zero
		v.heap = v.heap[:last]

		return value, true
	}

	if v.n == 0 {
		return zero, false
	}
	v.n--
	value := v.buf[v.n]
	v.buf[v.n] = zero

	return value, true
}

// Insert places value at index, shifting the elements at index and after one
// position to the right. It panics if index < 0 or index > Len().
func (v *Vec[T, A]) Insert(index int, value T) {
	n := v.Len()
	if index < 0 || index > n {
		panic(indexError(index, n))
	}

	v.Push(value)
	s := v.Slice()
	copy(s[index+1:], s[index:n])
	s[index] = value
}

// Remove deletes and returns the element at index, shifting the elements after
// it one position to the left. It panics if index < 0 or index >= Len().
func (v *Vec[T, A]) Remove(index int) T {
	s := v.Slice()
	if index < 0 || index >= len(s) {
		panic(indexError(index, len(s)))
	}

	value := s[index]
	copy(s[index:], s[index+1:])
	v.Pop()

	return value
}

// Set overwrites the element at index. It panics if index is out of range.
func (v *Vec[T, A]) Set(index int, value T) {
	*v.Ptr(index) = value
}

// Clear removes all elements. Heap-backed storage keeps its buffer and stays
// heap-backed.
func (v *Vec[T, A]) Clear() {
	if v.onHeap {
		clear(v.heap)
		v.heap = v.heap[:0]

		return
	}

	clear(v.inline()[:v.n])
	v.n = 0
}

// Truncate shortens the Vec to n elements. It does nothing if n >= Len() and
// panics if n is negative.
func (v *Vec[T, A]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: truncate to %d", errs.ErrInvalidLength, n))
	}

	if n >= v.Len() {
		return
	}

	if v.onHeap {
		clear(v.heap[n:])
		v.heap = v.heap[:n]

		return
	}

	clear(v.inline()[n:v.n])
	v.n = n
}

// Reserve guarantees capacity for at least additional more elements without
// reallocation. Reserving past the inline capacity promotes immediately.
// It panics if additional is negative.
func (v *Vec[T, A]) Reserve(additional int) {
	if additional < 0 {
		panic(fmt.Errorf("%w: reserve %d", errs.ErrInvalidCapacity, additional))
	}

	v.grow(additional)
}

// Append adds values in order. The batch size is known up front, so at most
// one promotion or reallocation happens.
func (v *Vec[T, A]) Append(values ...T) {
	switch {
	case v.onHeap:
		v.heap = append(v.heap, values...)
	case v.n+len(values) <= len(v.buf):
		v.n += copy(v.inline()[v.n:], values)
	default:
		v.promote(len(values), values)
	}
}

// Extend pulls every element of seq and pushes it. seq may be of any length;
// each element is subject to the same promotion rule as Push.
func (v *Vec[T, A]) Extend(seq iter.Seq[T]) {
	for value := range seq {
		v.Push(value)
	}
}

// ExtendN is Extend with a hint of how many elements seq will produce. The
// hint only drives preallocation; seq is consumed fully whatever its real
// length.
func (v *Vec[T, A]) ExtendN(seq iter.Seq[T], hint int) {
	v.grow(hint)
	v.Extend(seq)
}

// Release empties the Vec and hands a heap buffer back to the pool it was
// configured with. A heap-backed Vec stays heap-backed; later pushes allocate
// a fresh buffer.
func (v *Vec[T, A]) Release() {
	if !v.onHeap {
		v.Clear()
		return
	}

	if v.pool != nil {
		v.pool.Put(v.heap)
	}
	v.heap = nil
}
