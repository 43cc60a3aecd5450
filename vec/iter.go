package vec

import "iter"

// All returns an iterator over index/value pairs in order.
// The Vec must not be modified during iteration.
func (v *Vec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, value := range v.Slice() {
			if !yield(i, value) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Slice() {
			if !yield(value) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (v *Vec[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Drain returns an iterator that moves the elements out front to back. When
// the range loop ends, early or not, the Vec is empty; elements not yet
// yielded are dropped. The storage state is unchanged, so a heap-backed Vec
// stays heap-backed.
func (v *Vec[T, A]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer v.Clear()

		s := v.Slice()
		for i := range s {
			value := s[i]
			var zero T
			s[i] = zero
			if !yield(value) {
				return
			}
		}
	}
}
