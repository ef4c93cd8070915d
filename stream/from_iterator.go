package stream

import (
	"context"
	"io"
	"iter"

	"github.com/ChAoSUnItY/metamorphosis"
	"github.com/ChAoSUnItY/metamorphosis/internal/util"
)

// FromIterator creates a stream over a Go iterator. The resulting stream is
// single-use: a materialization drains the iterator destructively.
func FromIterator[E any](seq iter.Seq[E]) Stream[E] {
	next, stop := iter.Pull(seq)
	return NewSimpleStream(func(ctx context.Context) (E, error) {
		if ctx.Err() != nil {
			return util.DefaultValue[E](), ctx.Err()
		}
		e, ok := next()
		if !ok {
			return util.DefaultValue[E](), io.EOF
		}
		return e, nil
	}, WithCloseFuncOption(func() {
		stop()
	}))
}

// FromIterator2 creates a stream of Keyed pairs over a Go key/value iterator.
func FromIterator2[K comparable, V any](seq iter.Seq2[K, V]) Stream[metamorphosis.Keyed[K, V]] {
	next, stop := iter.Pull2(seq)
	return NewSimpleStream(func(ctx context.Context) (metamorphosis.Keyed[K, V], error) {
		if ctx.Err() != nil {
			return util.DefaultValue[metamorphosis.Keyed[K, V]](), ctx.Err()
		}
		k, v, ok := next()
		if !ok {
			return util.DefaultValue[metamorphosis.Keyed[K, V]](), io.EOF
		}
		return metamorphosis.Keyed[K, V]{Key: k, Value: v}, nil
	}, WithCloseFuncOption(func() {
		stop()
	}))
}
