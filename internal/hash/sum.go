// Package hash fingerprints element sequences with xxHash64.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// AppendKeyFunc appends the byte key identifying v to dst and returns the
// extended slice.
type AppendKeyFunc[T any] func(dst []byte, v T) []byte

// Sum64 computes the xxHash64 of the keys of values in order.
//
// Every key is prefixed with its uvarint length, so ["ab", "c"] and
// ["a", "bc"] hash differently. An empty sequence hashes to the xxHash64 of
// zero bytes.
func Sum64[T any](values []T, appendKey AppendKeyFunc[T]) uint64 {
	d := xxhash.New()

	var (
		scratch [64]byte
		prefix  [binary.MaxVarintLen64]byte
	)

	buf := scratch[:0]
	for _, v := range values {
		buf = appendKey(buf[:0], v)
		n := binary.PutUvarint(prefix[:], uint64(len(buf)))
		_, _ = d.Write(prefix[:n])
		_, _ = d.Write(buf)
	}

	return d.Sum64()
}

// String appends s as its raw bytes. It is the key function for string-like
// elements.
func String[S ~string](dst []byte, s S) []byte {
	return append(dst, s...)
}

// Integer is the set of integer types accepted by Uint64.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Uint64 appends v in little-endian order. It is the key function for
// integer-like elements.
func Uint64[I Integer](dst []byte, v I) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}
