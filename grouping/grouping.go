// Package grouping is the eager, materialized-collection surface of the
// grouped aggregation engine. A Grouping holds a slice and a key selector;
// every operation runs an independent single pass over the slice through the
// same engine the stream package exposes, so the two surfaces cannot drift
// apart. Unlike a drained stream, a Grouping is freely re-queryable.
package grouping

import (
	"context"
	"slices"

	"github.com/ChAoSUnItY/metamorphosis"
	"github.com/ChAoSUnItY/metamorphosis/stream"
)

type Grouping[T any, K comparable] struct {
	items []T
	keyOf metamorphosis.KeySelector[T, K]
}

// By groups the items of a slice by the key keyOf derives from each item.
// The slice is held by reference and must not be mutated while the Grouping
// is in use.
func By[T any, K comparable](items []T, keyOf metamorphosis.KeySelector[T, K]) Grouping[T, K] {
	return Grouping[T, K]{items: items, keyOf: keyOf}
}

// Stream returns a fresh keyed stream over the grouped items. Each call
// starts a new pass; the underlying slice is iterated in place, not copied.
func (g Grouping[T, K]) Stream() stream.Stream[metamorphosis.Keyed[K, T]] {
	return stream.GroupBy(stream.FromIterator(slices.Values(g.items)), g.keyOf)
}

// Items returns the underlying slice.
func (g Grouping[T, K]) Items() []T {
	return g.items
}

// Aggregate runs one pass over the grouped items, combining each item into
// its key's accumulator via op. See stream.Aggregate for the combine
// contract; panics from op propagate unmodified.
func Aggregate[T any, K comparable, R any](
	g Grouping[T, K],
	op metamorphosis.AggregatorFunc[K, T, R],
) map[K]R {
	return stream.MustAggregate(g.Stream(), op)
}

// FoldWithKey folds each key's items into an accumulator seeded by seedOf
// from the key's first item.
func FoldWithKey[T any, K comparable, R any](
	g Grouping[T, K],
	seedOf func(key K, firstItem T) R,
	op func(key K, acc R, item T) R,
) map[K]R {
	return stream.MustFoldWithKey(g.Stream(), seedOf, op)
}

// FoldWith folds each key's items into an accumulator obtained from
// seedProvider, re-invoked per new key.
func FoldWith[T any, K comparable, R any](
	g Grouping[T, K],
	seedProvider func() R,
	op func(key K, acc R, item T) R,
) map[K]R {
	return stream.MustFoldWith(g.Stream(), seedProvider, op)
}

// Fold folds each key's items into an accumulator seeded with a value copy
// of seed. For reference-typed seeds use FoldWith.
func Fold[T any, K comparable, R any](
	g Grouping[T, K],
	seed R,
	op func(acc R, item T) R,
) map[K]R {
	return stream.MustFold(g.Stream(), seed, op)
}

// ReduceWithKey reduces each key's items into a single item; the first item
// of a key becomes the accumulator and never goes through op.
func ReduceWithKey[T any, K comparable](
	g Grouping[T, K],
	op func(key K, acc T, item T) T,
) map[K]T {
	return stream.MustReduceWithKey(g.Stream(), op)
}

// Reduce is ReduceWithKey for operations that do not inspect the key.
func Reduce[T any, K comparable](
	g Grouping[T, K],
	op func(acc T, item T) T,
) map[K]T {
	return stream.MustReduce(g.Stream(), op)
}

// ReduceWithKeyAs reduces each key's items into an accumulator of a
// different type, converting only each key's first item.
func ReduceWithKeyAs[T any, K comparable, R any](
	g Grouping[T, K],
	convert func(item T) R,
	op func(key K, acc R, item T) R,
) map[K]R {
	return stream.MustReduceWithKeyAs(g.Stream(), convert, op)
}

// ReduceAs is ReduceWithKeyAs for operations that do not inspect the key.
func ReduceAs[T any, K comparable, R any](
	g Grouping[T, K],
	convert func(item T) R,
	op func(acc R, item T) R,
) map[K]R {
	return stream.MustReduceAs(g.Stream(), convert, op)
}

// EachCount counts the items of each key.
func (g Grouping[T, K]) EachCount() map[K]int {
	return stream.MustEachCount(g.Stream())
}

// Collect materializes the pre-grouped form: every key mapped to its items
// in source order.
func (g Grouping[T, K]) Collect() map[K][]T {
	return stream.MustFoldWith(
		g.Stream(),
		func() []T {
			return nil
		},
		func(_ K, acc []T, item T) []T {
			return append(acc, item)
		},
	)
}

// CollectWithCtx is Collect honoring context cancellation mid-pass.
func (g Grouping[T, K]) CollectWithCtx(ctx context.Context) (map[K][]T, error) {
	return stream.FoldWith(
		ctx,
		g.Stream(),
		func() []T {
			return nil
		},
		func(_ K, acc []T, item T) []T {
			return append(acc, item)
		},
	)
}
