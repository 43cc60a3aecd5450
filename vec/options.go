package vec

import (
	"fmt"

	"github.com/arloliu/smallvec/errs"
	"github.com/arloliu/smallvec/internal/options"
	"github.com/arloliu/smallvec/internal/pool"
)

type config struct {
	reserve int
	pool    any // *Pool[T], checked against T in New
}

// Option configures a Vec created by New.
type Option = options.Option[*config]

// WithReserve preallocates room for n elements. A reserve that fits inline
// leaves the Vec inline; a larger one makes it heap-backed immediately.
func WithReserve(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: reserve must be non-negative, got %d", errs.ErrInvalidOption, n)
		}
		c.reserve = n

		return nil
	})
}

// WithPool makes the Vec draw its heap buffer from p on promotion and return
// it to p on Release. The pool element type must match the Vec's.
func WithPool[T any](p *Pool[T]) Option {
	return options.New(func(c *config) error {
		if p == nil {
			return fmt.Errorf("%w: pool is nil", errs.ErrInvalidOption)
		}
		c.pool = p

		return nil
	})
}

// New creates an empty Vec configured by opts.
//
// Returns errs.ErrInvalidOption for a rejected option value and
// errs.ErrPoolTypeMismatch when WithPool was given a pool of another element
// type.
//
// Example:
//
//	p := vec.NewPool[int](64, 4096)
//	v, err := vec.New[int, [8]int](vec.WithPool(p), vec.WithReserve(32))
func New[T any, A Inline[T]](opts ...Option) (*Vec[T, A], error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	v := &Vec[T, A]{}
	if cfg.pool != nil {
		p, ok := cfg.pool.(*Pool[T])
		if !ok {
			return nil, fmt.Errorf("%w: got %T", errs.ErrPoolTypeMismatch, cfg.pool)
		}
		v.pool = p.slices
	}

	if cfg.reserve > len(v.buf) {
		v.promote(cfg.reserve, nil)
	}

	return v, nil
}

// Pool recycles heap buffers between Vecs of the same element type.
// It is safe for concurrent use.
type Pool[T any] struct {
	slices *pool.SlicePool[T]
}

// NewPool creates a pool whose buffers have at least defaultCap capacity.
// Buffers grown beyond a positive maxCap are not retained on Release.
func NewPool[T any](defaultCap, maxCap int) *Pool[T] {
	return &Pool[T]{slices: pool.NewSlicePool[T](defaultCap, maxCap)}
}
