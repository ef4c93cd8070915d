package stream

import (
	"context"

	"github.com/ChAoSUnItY/metamorphosis"
	"github.com/ChAoSUnItY/metamorphosis/lazy"
)

// Aggregate drains a keyed stream exactly once, in source order, building a
// mapping from key to accumulated result. op is invoked exactly once per
// source item; its acc argument is nil if and only if the item is the first
// observed for its key, and the value op returns replaces the key's
// accumulator. The mapping never holds two accumulators for one key.
//
// Key order in the result is unspecified; combine order within a key follows
// source order. An empty stream yields an empty (non-nil) mapping. A panic in
// op or the key selector propagates unmodified and the partial mapping is
// never exposed.
//
// Every other grouped operation (Fold*, Reduce*, EachCount) is a wrapper
// around this one pass.
func Aggregate[K comparable, T any, R any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	op metamorphosis.AggregatorFunc[K, T, R],
) (map[K]R, error) {
	return AggregateWithErrAndCtx(ctx, keyed, op.ToErrCtx())
}

// AggregateWithErr is Aggregate for a fallible aggregator function. An error
// from op aborts the pass and discards the partial mapping.
func AggregateWithErr[K comparable, T any, R any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	op metamorphosis.AggregatorFuncWithErr[K, T, R],
) (map[K]R, error) {
	return AggregateWithErrAndCtx(ctx, keyed, op.ToErrCtx())
}

// AggregateWithErrAndCtx is Aggregate for a fallible, context-aware
// aggregator function.
func AggregateWithErrAndCtx[K comparable, T any, R any](
	ctx context.Context,
	keyed Stream[metamorphosis.Keyed[K, T]],
	op metamorphosis.AggregatorFuncWithErrAndCtx[K, T, R],
) (map[K]R, error) {
	result := make(map[K]R)
	err := keyed.ConsumeWithErrAndCtx(ctx, func(ctx context.Context, kv metamorphosis.Keyed[K, T]) error {
		// op owns the accumulator for the duration of the call; handing it a
		// copy keeps the mapping from ever exposing a stale value.
		var acc *R
		if existing, ok := result[kv.Key]; ok {
			acc = &existing
		}
		next, err := op(ctx, kv.Key, acc, kv.Value)
		if err != nil {
			return err
		}
		result[kv.Key] = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AggregateLazy defers the aggregation pass until the result is requested.
// Each Get on the returned Lazy runs a fresh pass over the stream, so for
// single-use sources the Lazy is effectively single-use too.
func AggregateLazy[K comparable, T any, R any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	op metamorphosis.AggregatorFunc[K, T, R],
) lazy.Lazy[map[K]R] {
	return lazy.NewLazy(func(ctx context.Context) (map[K]R, error) {
		return Aggregate(ctx, keyed, op)
	})
}

// MustAggregate is a convenience function that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func MustAggregate[K comparable, T any, R any](
	keyed Stream[metamorphosis.Keyed[K, T]],
	op metamorphosis.AggregatorFunc[K, T, R],
) map[K]R {
	result, err := Aggregate(context.Background(), keyed, op)
	if err != nil {
		panic(err)
	}
	return result
}
