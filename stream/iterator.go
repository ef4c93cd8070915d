package stream

import (
	"context"
	"errors"
)

var errStopIteration = errors.New("stop iteration")

// Iterator adapts the stream to a Go range-over-func loop. Breaking out of
// the loop stops pulling from the source; remaining items stay unconsumed.
// It panics if the stream errors, use the Consume family for fallible sources.
func (s Stream[T]) Iterator(yield func(T) bool) {
	err := s.ConsumeWithErr(context.Background(), func(v T) error {
		if !yield(v) {
			return errStopIteration
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		panic(err)
	}
}

// IndexedIterator is Iterator with a running element index.
func (s Stream[T]) IndexedIterator(yield func(int, T) bool) {
	index := -1
	s.Iterator(func(v T) bool {
		index++
		return yield(index, v)
	})
}
