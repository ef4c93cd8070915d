package stream

import (
	"context"

	"github.com/ChAoSUnItY/metamorphosis"
)

// GroupBy decorates a stream with a key derived from each item, producing a
// lazy stream of Keyed pairs in source order. Each pulled pair pulls exactly
// one item from the source and evaluates keyOf exactly once on it; there is
// no buffering or look-ahead. The result is finite iff the source is finite
// and restartable iff the source is restartable.
//
// keyOf must be a pure function of the item for the duration of a pass and
// must not mutate it.
func GroupBy[T any, K comparable](
	src Stream[T],
	keyOf metamorphosis.KeySelector[T, K],
) Stream[metamorphosis.Keyed[K, T]] {
	return Map(src, func(v T) metamorphosis.Keyed[K, T] {
		return metamorphosis.Keyed[K, T]{Key: keyOf(v), Value: v}
	})
}

// GroupByWithErr is GroupBy for a fallible key selector. A key derivation
// error aborts the pass.
func GroupByWithErr[T any, K comparable](
	src Stream[T],
	keyOf metamorphosis.KeySelectorWithErr[T, K],
) Stream[metamorphosis.Keyed[K, T]] {
	return GroupByWithErrAndCtx(src, keyOf.ToErrCtx())
}

// GroupByWithErrAndCtx is GroupBy for a fallible, context-aware key selector.
func GroupByWithErrAndCtx[T any, K comparable](
	src Stream[T],
	keyOf metamorphosis.KeySelectorWithErrAndCtx[T, K],
) Stream[metamorphosis.Keyed[K, T]] {
	return MapWithErrAndCtx(src, func(ctx context.Context, v T) (metamorphosis.Keyed[K, T], error) {
		k, err := keyOf(ctx, v)
		if err != nil {
			return metamorphosis.Keyed[K, T]{}, err
		}
		return metamorphosis.Keyed[K, T]{Key: k, Value: v}, nil
	})
}
