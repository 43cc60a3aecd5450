package vec

// At returns the element at index. It panics if index is out of range.
func (v *Vec[T, A]) At(index int) T {
	return *v.Ptr(index)
}

// Ptr returns a pointer to the element at index for in-place mutation. The
// pointer is invalidated by any call that adds elements. It panics if index is
// out of range.
func (v *Vec[T, A]) Ptr(index int) *T {
	s := v.Slice()
	if index < 0 || index >= len(s) {
		panic(indexError(index, len(s)))
	}

	return &s[index]
}

// Get returns the element at index and true, or the zero value and false if
// index is out of range.
func (v *Vec[T, A]) Get(index int) (T, bool) {
	s := v.Slice()
	if index < 0 || index >= len(s) {
		var zero T
		return zero, false
	}

	return s[index], true
}

// Last returns the final element and true, or the zero value and false if the
// Vec is empty.
func (v *Vec[T, A]) Last() (T, bool) {
	return v.Get(v.Len() - 1)
}

// Range returns the elements in [lo, hi) as a slice aliasing the Vec's
// storage. It panics unless 0 <= lo <= hi <= Len().
func (v *Vec[T, A]) Range(lo, hi int) []T {
	s := v.Slice()
	if lo < 0 || hi < lo || hi > len(s) {
		panic(rangeError(lo, hi, len(s)))
	}

	return s[lo:hi:hi]
}

// Prefix returns the first hi elements, equivalent to Range(0, hi).
func (v *Vec[T, A]) Prefix(hi int) []T {
	return v.Range(0, hi)
}

// Suffix returns the elements from lo to the end, equivalent to
// Range(lo, Len()).
func (v *Vec[T, A]) Suffix(lo int) []T {
	return v.Range(lo, v.Len())
}
