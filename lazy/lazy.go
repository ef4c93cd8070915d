package lazy

import (
	"context"
	"fmt"

	"github.com/ChAoSUnItY/metamorphosis"
	"github.com/ChAoSUnItY/metamorphosis/internal/util"
)

// Lazy is a deferred computation of a value.
// The computation runs on every Get; Lazy itself caches nothing.
// A Lazy may be empty, callers decide whether to require a value or use the
// Optional accessors.
type Lazy[T any] struct {
	fetcher func(ctx context.Context) (*T, error)
}

// NewLazy creates a Lazy whose computation always yields a value.
func NewLazy[T any](fetcher func(ctx context.Context) (T, error)) Lazy[T] {
	return Lazy[T]{fetcher: func(ctx context.Context) (*T, error) {
		v, err := fetcher(ctx)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}}
}

// NewLazyOptional creates a Lazy whose computation may yield no value (nil).
func NewLazyOptional[T any](fetcher func(ctx context.Context) (*T, error)) Lazy[T] {
	return Lazy[T]{fetcher: fetcher}
}

// Just creates an already-computed Lazy holding v.
func Just[T any](v T) Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return &v, nil
	}}
}

// Empty gets an empty Lazy
func Empty[T any]() Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return nil, nil
	}}
}

// Error creates a Lazy that fails with err on every Get.
func Error[T any](err error) Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return nil, err
	}}
}

// Get computes and returns the value. It fails if the Lazy is empty; use
// GetOptional when emptiness is a valid outcome.
func (o Lazy[T]) Get(ctx context.Context) (T, error) {
	v, err := o.fetcher(ctx)
	if err != nil {
		return util.DefaultValue[T](), err
	}
	if v == nil {
		return util.DefaultValue[T](), fmt.Errorf("lazy value is empty")
	}
	return *v, nil
}

// GetOptional computes and returns the value, or nil if the Lazy is empty.
func (o Lazy[T]) GetOptional(ctx context.Context) (*T, error) {
	return o.fetcher(ctx)
}

// MustGet computes and returns the value, panicking on error or emptiness.
// Use for testing or when the computation is known to be static.
func (o Lazy[T]) MustGet() T {
	v, err := o.Get(context.Background())
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetOptional computes and returns the value (nil if empty), panicking on
// error. Use for testing or when the computation is known to be static.
func (o Lazy[T]) MustGetOptional() *T {
	v, err := o.GetOptional(context.Background())
	if err != nil {
		panic(err)
	}
	return v
}

// OrElse computes the value, substituting v when the Lazy is empty.
func (o Lazy[T]) OrElse(ctx context.Context, v T) (T, error) {
	d, err := o.fetcher(ctx)
	if err != nil {
		return util.DefaultValue[T](), err
	}
	if d == nil {
		return v, nil
	}
	return *d, nil
}

// MustOrElse computes the value, substituting v when the Lazy is empty.
// It panics in case of error, use for testing or when the value is static.
func (o Lazy[T]) MustOrElse(v T) T {
	d, err := o.fetcher(context.Background())
	if err != nil {
		panic(err)
	}
	if d == nil {
		return v
	}
	return *d
}

// OrElseThrow converts emptiness into the error produced by errFunc, so that
// Get on the returned Lazy fails with a caller-chosen error instead of the
// generic one.
func (o Lazy[T]) OrElseThrow(errFunc func() error) Lazy[T] {
	return NewLazy[T](func(ctx context.Context) (T, error) {
		v, err := o.fetcher(ctx)
		if err != nil {
			return util.DefaultValue[T](), err
		}
		if v == nil {
			return util.DefaultValue[T](), errFunc()
		}
		return *v, nil
	})
}

// IsEmpty reports whether the Lazy computes to no value.
func (o Lazy[T]) IsEmpty(ctx context.Context) (bool, error) {
	v, err := o.GetOptional(ctx)
	if err != nil {
		return false, err
	}
	return v == nil, nil
}

// MustIsEmpty reports whether the Lazy computes to no value, panicking on
// error. Use for testing or when the computation is known to be static.
func (o Lazy[T]) MustIsEmpty() bool {
	isEmpty, err := o.IsEmpty(context.Background())
	if err != nil {
		panic(err)
	}
	return isEmpty
}

// Map maps the value of the Lazy to a new value using the provided mapper
// function. If the Lazy is empty, it returns an empty Lazy.
func Map[SRC any, TGT any](src Lazy[SRC], mapper metamorphosis.Mapper[SRC, TGT]) Lazy[TGT] {
	return NewLazyOptional[TGT](func(ctx context.Context) (*TGT, error) {
		srcValue, err := src.GetOptional(ctx)
		if err != nil {
			return nil, err
		}
		if srcValue == nil {
			return nil, nil
		}
		return util.Pointer(mapper(*srcValue)), nil
	})
}
