package vec

import "fmt"

// Format implements fmt.Formatter, printing the live elements like a slice.
func (v *Vec[T, A]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}

// String returns the live elements formatted like a slice, e.g. "[1 2 3]".
func (v *Vec[T, A]) String() string {
	return fmt.Sprint(v.Slice())
}
