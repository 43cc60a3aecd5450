package vec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type vec4 = Vec[int, [4]int]

// recoverErr runs fn, which must panic with an error value, and returns it.
func recoverErr(t *testing.T, fn func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		err = e
	}()
	fn()

	return nil
}

func TestVec_ZeroValue(t *testing.T) {
	var v vec4

	require.Zero(t, v.Len())
	require.Equal(t, 4, v.Cap())
	require.Equal(t, 4, v.InlineCap())
	require.True(t, v.IsEmpty())
	require.True(t, v.IsInline())
	require.Empty(t, v.Slice())
}

func TestVec_PushWithinInlineCapacity(t *testing.T) {
	for n := 0; n <= 4; n++ {
		var v vec4
		for i := range n {
			v.Push(i)
		}

		require.True(t, v.IsInline(), "n=%d", n)
		require.Equal(t, n, v.Len())
		require.Equal(t, 4, v.Cap())
	}
}

func TestVec_PromotionScenario(t *testing.T) {
	var v vec4
	for i := 1; i <= 4; i++ {
		v.Push(i)
	}

	require.True(t, v.IsInline())
	require.Equal(t, 4, v.Len())
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())

	v.Push(5)
	require.False(t, v.IsInline())
	require.Equal(t, 5, v.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.Slice())
	require.Equal(t, 8, v.Cap(), "promotion reserves twice the inline capacity")

	got, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, 5, got)
	require.Equal(t, 4, v.Len())
	require.False(t, v.IsInline())

	slices.Sort(v.Slice())
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func TestVec_PromotionClearsInlineSlots(t *testing.T) {
	var v Vec[*int, [2]*int]
	a, b, c := 1, 2, 3
	v.Push(&a)
	v.Push(&b)
	v.Push(&c)

	require.False(t, v.IsInline())
	require.Equal(t, [2]*int{}, v.buf)
	require.Zero(t, v.n)
	require.Equal(t, []*int{&a, &b, &c}, v.Slice())
}

func TestVec_NeverDemotes(t *testing.T) {
	var v vec4
	for i := range 5 {
		v.Push(i)
	}
	require.False(t, v.IsInline())

	t.Run("pop to empty", func(t *testing.T) {
		for range 5 {
			_, ok := v.Pop()
			require.True(t, ok)
		}
		_, ok := v.Pop()
		require.False(t, ok)
		require.True(t, v.IsEmpty())
		require.False(t, v.IsInline())
	})

	t.Run("push after emptying", func(t *testing.T) {
		v.Push(42)
		require.False(t, v.IsInline())
		require.Equal(t, []int{42}, v.Slice())
	})

	t.Run("clear and truncate", func(t *testing.T) {
		v.Clear()
		require.False(t, v.IsInline())
		v.Append(1, 2)
		v.Truncate(0)
		require.False(t, v.IsInline())
		require.Zero(t, v.Len())
	})
}

func TestVec_IndexAcrossStates(t *testing.T) {
	var v vec4
	for k := range 10 {
		v.Push(k * 10)
		for i := 0; i <= k; i++ {
			require.Equal(t, i*10, v.At(i), "k=%d inline=%v", k, v.IsInline())
		}
	}
}

func TestVec_SliceCapacityIsClamped(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		v := FromValues[int, [4]int](1, 2)
		s := v.Slice()
		require.Equal(t, len(s), cap(s))

		_ = append(s, 99)
		require.Equal(t, 2, v.Len())
		require.Zero(t, v.buf[2])
	})

	t.Run("heap", func(t *testing.T) {
		v := WithCapacity[int, [4]int](16)
		v.Append(1, 2)
		s := v.Slice()
		require.Equal(t, len(s), cap(s))

		_ = append(s, 99)
		require.Equal(t, []int{1, 2}, v.Slice())
	})
}
