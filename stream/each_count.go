package stream

import (
	"context"

	"github.com/ChAoSUnItY/metamorphosis"
	"github.com/ChAoSUnItY/metamorphosis/lazy"
)

// EachCount counts the items of each key.
func EachCount[K comparable, T any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
) (map[K]int, error) {
	return Fold(ctx, keyed, 0, func(acc int, _ T) int {
		return acc + 1
	})
}

// MustEachCount is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustEachCount[K comparable, T any](keyed Stream[metamorphosis.Keyed[K, T]]) map[K]int {
	result, err := EachCount(context.Background(), keyed)
	if err != nil {
		panic(err)
	}
	return result
}

// EachCountLazy defers the counting pass until the result is requested.
func EachCountLazy[K comparable, T any](keyed Stream[metamorphosis.Keyed[K, T]]) lazy.Lazy[map[K]int] {
	return lazy.NewLazy(func(ctx context.Context) (map[K]int, error) {
		return EachCount(ctx, keyed)
	})
}
