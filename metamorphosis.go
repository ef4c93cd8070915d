package metamorphosis

import (
	"context"
)

// Keyed is a key tagged with the source value it was derived from.
// It is the element type of a grouped stream: one Keyed pair per source item.
type Keyed[K comparable, V any] struct {
	Key   K
	Value V
}

// KeySelector derives the grouping key for an item. It must be a pure
// function of the item for the duration of a pass and must not mutate it.
type KeySelector[T any, K comparable] func(item T) K
type KeySelectorWithErr[T any, K comparable] func(item T) (K, error)
type KeySelectorWithErrAndCtx[T any, K comparable] func(ctx context.Context, item T) (K, error)

// AggregatorFunc folds one item into the accumulator of its key.
// acc is nil if and only if this is the first item observed for the key;
// in that case the function is solely responsible for producing the seed.
// The returned value becomes the key's accumulator.
type AggregatorFunc[K comparable, T any, R any] func(key K, acc *R, item T) R
type AggregatorFuncWithErr[K comparable, T any, R any] func(key K, acc *R, item T) (R, error)
type AggregatorFuncWithErrAndCtx[K comparable, T any, R any] func(ctx context.Context, key K, acc *R, item T) (R, error)

type Mapper[SRC any, TGT any] func(src SRC) TGT
type MapperWithErr[SRC any, TGT any] func(src SRC) (TGT, error)
type MapperWithErrAndCtx[SRC any, TGT any] func(context.Context, SRC) (TGT, error)

type Predicate[SRC any] Mapper[SRC, bool]
type PredicateWithErr[SRC any] MapperWithErr[SRC, bool]
type PredicateWithErrAndCtx[SRC any] MapperWithErrAndCtx[SRC, bool]

func (ks KeySelector[T, K]) ToErrCtx() KeySelectorWithErrAndCtx[T, K] {
	return func(_ context.Context, item T) (K, error) {
		return ks(item), nil
	}
}

func (ks KeySelectorWithErr[T, K]) ToErrCtx() KeySelectorWithErrAndCtx[T, K] {
	return func(_ context.Context, item T) (K, error) {
		return ks(item)
	}
}

func (a AggregatorFunc[K, T, R]) ToErrCtx() AggregatorFuncWithErrAndCtx[K, T, R] {
	return func(_ context.Context, key K, acc *R, item T) (R, error) {
		return a(key, acc, item), nil
	}
}

func (a AggregatorFuncWithErr[K, T, R]) ToErrCtx() AggregatorFuncWithErrAndCtx[K, T, R] {
	return func(_ context.Context, key K, acc *R, item T) (R, error) {
		return a(key, acc, item)
	}
}

func (m Mapper[SRC, TGT]) ToErrCtx() MapperWithErrAndCtx[SRC, TGT] {
	return func(_ context.Context, src SRC) (TGT, error) {
		return m(src), nil
	}
}

func (em MapperWithErr[SRC, TGT]) ToErrCtx() MapperWithErrAndCtx[SRC, TGT] {
	return func(_ context.Context, src SRC) (TGT, error) {
		return em(src)
	}
}

func (p Predicate[SRC]) ToErrCtx() PredicateWithErrAndCtx[SRC] {
	return func(_ context.Context, src SRC) (bool, error) {
		return p(src), nil
	}
}

func (p PredicateWithErr[SRC]) ToErrCtx() PredicateWithErrAndCtx[SRC] {
	return func(_ context.Context, src SRC) (bool, error) {
		return p(src)
	}
}
