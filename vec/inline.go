package vec

import "unsafe"

// Inline is the set of array types usable as inline storage. The array
// length is the inline capacity N.
type Inline[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[10]T | ~[12]T | ~[16]T | ~[20]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T |
		~[96]T | ~[128]T | ~[256]T | ~[512]T | ~[1024]T
}

// arraySlice views the whole array *a as a slice of length N without copying.
func arraySlice[T any, A Inline[T]](a *A) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(a)), len(*a))
}
