package stream

import (
	"context"

	"github.com/ChAoSUnItY/metamorphosis"
)

// ReduceWithKey reduces each key's items into a single item of the same
// type. The first item of a key becomes the accumulator as-is and is never
// passed through op; op only ever folds second and later items.
func ReduceWithKey[K comparable, T any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	op func(key K, acc T, item T) T,
) (map[K]T, error) {
	return Aggregate(ctx, keyed, func(key K, acc *T, item T) T {
		if acc == nil {
			return item
		}
		return op(key, *acc, item)
	})
}

// MustReduceWithKey is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustReduceWithKey[K comparable, T any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	op func(key K, acc T, item T) T,
) map[K]T {
	result, err := ReduceWithKey(context.Background(), keyed, op)
	if err != nil {
		panic(err)
	}
	return result
}

// Reduce is ReduceWithKey for operations that do not inspect the key.
func Reduce[K comparable, T any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	op func(acc T, item T) T,
) (map[K]T, error) {
	return ReduceWithKey(ctx, keyed, func(_ K, acc T, item T) T {
		return op(acc, item)
	})
}

// MustReduce is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustReduce[K comparable, T any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	op func(acc T, item T) T,
) map[K]T {
	result, err := Reduce(context.Background(), keyed, op)
	if err != nil {
		panic(err)
	}
	return result
}

// ReduceWithKeyAs reduces each key's items into an accumulator of a
// different type. convert is applied only to each key's first item to
// produce the accumulator; that item deliberately bypasses op.
func ReduceWithKeyAs[K comparable, T any, R any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	convert func(item T) R,
	op func(key K, acc R, item T) R,
) (map[K]R, error) {
	return Aggregate(ctx, keyed, func(key K, acc *R, item T) R {
		if acc == nil {
			return convert(item)
		}
		return op(key, *acc, item)
	})
}

// MustReduceWithKeyAs is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustReduceWithKeyAs[K comparable, T any, R any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	convert func(item T) R,
	op func(key K, acc R, item T) R,
) map[K]R {
	result, err := ReduceWithKeyAs(context.Background(), keyed, convert, op)
	if err != nil {
		panic(err)
	}
	return result
}

// ReduceAs is ReduceWithKeyAs for operations that do not inspect the key.
func ReduceAs[K comparable, T any, R any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	convert func(item T) R,
	op func(acc R, item T) R,
) (map[K]R, error) {
	return ReduceWithKeyAs(ctx, keyed, convert, func(_ K, acc R, item T) R {
		return op(acc, item)
	})
}

// MustReduceAs is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustReduceAs[K comparable, T any, R any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	convert func(item T) R,
	op func(acc R, item T) R,
) map[K]R {
	result, err := ReduceAs(context.Background(), keyed, convert, op)
	if err != nil {
		panic(err)
	}
	return result
}
