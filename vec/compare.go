package vec

import (
	"slices"

	"github.com/arloliu/smallvec/internal/hash"
)

// Equal reports whether a and b hold the same elements in the same order.
// The inline capacities and storage states of a and b may differ.
func Equal[T comparable, A Inline[T], B Inline[T]](a *Vec[T, A], b *Vec[T, B]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any, A Inline[T], B Inline[T]](a *Vec[T, A], b *Vec[T, B], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Hash returns an xxHash64 fingerprint of the elements in order. appendKey
// appends the bytes identifying one element; StringKey and IntKey cover the
// common element types. The result depends only on the element sequence, not
// on the storage state.
func (v *Vec[T, A]) Hash(appendKey func(dst []byte, value T) []byte) uint64 {
	return hash.Sum64(v.Slice(), appendKey)
}

// StringKey is a Hash key function for string-like elements.
func StringKey[S ~string](dst []byte, s S) []byte {
	return hash.String(dst, s)
}

// IntKey is a Hash key function for integer elements.
func IntKey[I hash.Integer](dst []byte, i I) []byte {
	return hash.Uint64(dst, i)
}
