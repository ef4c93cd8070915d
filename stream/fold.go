package stream

import (
	"context"

	"github.com/ChAoSUnItY/metamorphosis"
)

// FoldWithKey folds each key's items into an accumulator seeded by seedOf.
// seedOf is evaluated exactly once per distinct key, on the key's first item
// in source order; that first item is then folded into the seed by op like
// every later one.
func FoldWithKey[K comparable, T any, R any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	seedOf func(key K, firstItem T) R,
	op func(key K, acc R, item T) R,
) (map[K]R, error) {
	return Aggregate(ctx, keyed, func(key K, acc *R, item T) R {
		if acc == nil {
			return op(key, seedOf(key, item), item)
		}
		return op(key, *acc, item)
	})
}

// MustFoldWithKey is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustFoldWithKey[K comparable, T any, R any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	seedOf func(key K, firstItem T) R,
	op func(key K, acc R, item T) R,
) map[K]R {
	result, err := FoldWithKey(context.Background(), keyed, seedOf, op)
	if err != nil {
		panic(err)
	}
	return result
}

// FoldWith folds each key's items into an accumulator obtained from
// seedProvider. The provider is re-invoked per new key, never per item, which
// makes it the right form for reference-typed seeds (slices, maps) that must
// not share backing storage across keys.
func FoldWith[K comparable, T any, R any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	seedProvider func() R,
	op func(key K, acc R, item T) R,
) (map[K]R, error) {
	return FoldWithKey(ctx, keyed, func(_ K, _ T) R {
		return seedProvider()
	}, op)
}

// MustFoldWith is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustFoldWith[K comparable, T any, R any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	seedProvider func() R,
	op func(key K, acc R, item T) R,
) map[K]R {
	result, err := FoldWith(context.Background(), keyed, seedProvider, op)
	if err != nil {
		panic(err)
	}
	return result
}

// Fold folds each key's items into an accumulator seeded with a copy of
// seed. The copy is a plain value copy: a seed holding a pointer, slice or
// map shares its backing across keys, use FoldWith for those.
func Fold[K comparable, T any, R any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	seed R,
	op func(acc R, item T) R,
) (map[K]R, error) {
	return FoldWithKey(ctx, keyed, func(_ K, _ T) R {
		return seed
	}, func(_ K, acc R, item T) R {
		return op(acc, item)
	})
}

// MustFold is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustFold[K comparable, T any, R any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	seed R,
	op func(acc R, item T) R,
) map[K]R {
	result, err := Fold(context.Background(), keyed, seed, op)
	if err != nil {
		panic(err)
	}
	return result
}
