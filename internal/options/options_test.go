package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sizing struct {
	reserve int
	label   string
	calls   []string
}

func withReserve(n int) Option[*sizing] {
	return New(func(s *sizing) error {
		if n < 0 {
			return errors.New("reserve cannot be negative")
		}
		s.reserve = n
		s.calls = append(s.calls, "reserve")

		return nil
	})
}

func withLabel(label string) Option[*sizing] {
	return NoError(func(s *sizing) {
		s.label = label
		s.calls = append(s.calls, "label")
	})
}

func TestNew(t *testing.T) {
	t.Run("applies accepted value", func(t *testing.T) {
		s := &sizing{}
		require.NoError(t, withReserve(16).apply(s))
		require.Equal(t, 16, s.reserve)
	})

	t.Run("propagates rejection", func(t *testing.T) {
		s := &sizing{}
		err := withReserve(-1).apply(s)
		require.Error(t, err)
		require.Contains(t, err.Error(), "reserve cannot be negative")
		require.Zero(t, s.reserve)
	})
}

func TestNoError(t *testing.T) {
	s := &sizing{}
	require.NoError(t, withLabel("small").apply(s))
	require.Equal(t, "small", s.label)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		s := &sizing{}
		require.NoError(t, Apply(s, withLabel("a"), withReserve(4), withLabel("b")))
		require.Equal(t, []string{"label", "reserve", "label"}, s.calls)
		require.Equal(t, "b", s.label)
		require.Equal(t, 4, s.reserve)
	})

	t.Run("stops at first error", func(t *testing.T) {
		s := &sizing{}
		err := Apply(s, withReserve(8), withReserve(-3), withLabel("unreached"))
		require.Error(t, err)
		require.Equal(t, 8, s.reserve)
		require.Empty(t, s.label)
	})

	t.Run("skips nil options", func(t *testing.T) {
		s := &sizing{}
		require.NoError(t, Apply(s, nil, withLabel("x"), nil))
		require.Equal(t, "x", s.label)
	})

	t.Run("no options", func(t *testing.T) {
		s := &sizing{}
		require.NoError(t, Apply(s))
		require.Empty(t, s.calls)
	})
}
