package stream

import (
	"context"
	"fmt"
	"io"

	"github.com/ChAoSUnItY/metamorphosis"
	"github.com/ChAoSUnItY/metamorphosis/internal/util"
	"github.com/ChAoSUnItY/metamorphosis/lazy"
)

// Stream is a lazy, pull-based sequence of items. Nothing is produced until a
// terminal operation (Consume, Collect, Aggregate, ...) materializes it, and a
// materialization drains the underlying provider exactly once, in order.
type Stream[T any] struct {
	provider            ProviderFunc[T]
	allLifecycleElement []Lifecycle
}

// ProviderFunc produces the next item of a stream, or io.EOF when exhausted.
type ProviderFunc[T any] func(ctx context.Context) (T, error)

func NewStream[T any](provider Provider[T]) Stream[T] {
	return newStream(provider.Emit, []Lifecycle{provider})
}

func newStream[T any](providerFunc ProviderFunc[T], allLifecycleElement []Lifecycle) Stream[T] {
	return Stream[T]{provider: providerFunc, allLifecycleElement: allLifecycleElement}
}

type CreateStreamOption struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func WithOpenFuncOption(openFunc func(ctx context.Context) error) CreateStreamOption {
	return CreateStreamOption{openFunc: openFunc}
}

func WithCloseFuncOption(closeFunc func()) CreateStreamOption {
	return CreateStreamOption{closeFunc: closeFunc}
}

// NewSimpleStream creates a stream from a bare provider function, optionally
// attaching open/close hooks as a lifecycle element.
func NewSimpleStream[T any](providerFunc ProviderFunc[T], options ...CreateStreamOption) Stream[T] {
	var openFunc func(ctx context.Context) error
	var closeFunc func()

	for _, option := range options {
		if option.openFunc != nil {
			openFunc = option.openFunc
		}
		if option.closeFunc != nil {
			closeFunc = option.closeFunc
		}
	}

	var lifecycleElements []Lifecycle
	if openFunc != nil || closeFunc != nil {
		lifecycleElements = []Lifecycle{
			NewLifecycle(openFunc, closeFunc),
		}
	}
	return Stream[T]{provider: providerFunc, allLifecycleElement: lifecycleElements}
}

// Consume materializes the stream and applies f to each item in order.
// For empty streams it returns immediately with no error.
// It returns an error if any stage of the pipeline fails; panics from
// caller-supplied functions propagate unmodified.
func (s Stream[T]) Consume(ctx context.Context, f func(T)) error {
	return s.ConsumeWithErr(ctx, func(v T) error {
		f(v)
		return nil
	})
}

// MustConsume is a convenience method that panics if the stream errors
func (s Stream[T]) MustConsume(f func(T)) {
	err := s.Consume(context.Background(), f)
	if err != nil {
		panic(err)
	}
}

// ConsumeWithErr materializes the stream and applies f to each item in order,
// stopping the pipeline on the first error f returns.
func (s Stream[T]) ConsumeWithErr(ctx context.Context, f func(T) error) error {
	return s.ConsumeWithErrAndCtx(ctx, func(_ context.Context, v T) error {
		return f(v)
	})
}

// ConsumeWithErrAndCtx materializes the stream and applies f to each item in
// order, passing through the context so f can observe cancellation.
func (s Stream[T]) ConsumeWithErrAndCtx(ctx context.Context, f func(ctx context.Context, value T) error) error {
	cancelFunc, err := doOpenStream[T](ctx, s)
	if err != nil {
		return err
	}

	// All lifecycle elements opened successfully, close them when the pass ends
	defer func() {
		doCloseStream(s)
		cancelFunc()
	}()

	for {
		// Check the context before pulling the next item
		if ctx.Err() != nil {
			return ctx.Err()
		}
		v, err := s.provider(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		err = f(ctx, v)
		if err != nil {
			return err
		}
	}
}

// Collect materializes the stream and collects all items into a slice.
func (s Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var result []T
	err := s.Consume(ctx, func(v T) {
		result = append(result, v)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MustCollect is a convenience method that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func (s Stream[T]) MustCollect() []T {
	result, err := s.Collect(context.Background())
	if err != nil {
		panic(err)
	}
	return result
}

// Count counts the number of items in the stream (materializes the stream).
func (s Stream[T]) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.Consume(ctx, func(_ T) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MustCount is a convenience method that panics if the stream errors.
// Should be used for testing purposes or when streams are static (e.g. slice sourced streams)
func (s Stream[T]) MustCount() int {
	count, err := s.Count(context.Background())
	if err != nil {
		panic(err)
	}
	return count
}

// FindFirst pulls at most one item from the stream.
func (s Stream[T]) FindFirst() lazy.Lazy[T] {
	return lazy.NewLazyOptional[T](func(ctx context.Context) (*T, error) {
		itemArr, err := s.Limit(1).Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(itemArr) > 0 {
			return &itemArr[0], nil
		}
		return nil, nil
	}).OrElseThrow(func() error {
		return fmt.Errorf("no \"first element\" in an empty stream")
	})
}

func (s Stream[T]) IsEmpty(ctx context.Context) (bool, error) {
	first, err := s.Limit(1).Collect(ctx)
	if err != nil {
		return false, err
	}
	return len(first) == 0, nil
}

func (s Stream[T]) Filter(predicate metamorphosis.Predicate[T]) Stream[T] {
	return s.FilterWithErrAndCtx(predicate.ToErrCtx())
}

func (s Stream[T]) FilterWithErr(predicate metamorphosis.PredicateWithErr[T]) Stream[T] {
	return s.FilterWithErrAndCtx(predicate.ToErrCtx())
}

func (s Stream[T]) FilterWithErrAndCtx(predicate metamorphosis.PredicateWithErrAndCtx[T]) Stream[T] {
	return newStream[T](func(ctx context.Context) (T, error) {
		for {
			v, err := s.provider(ctx)
			if err != nil {
				return v, err
			}
			shouldKeep, err := predicate(ctx, v)
			if err != nil {
				// Wrapping errors, e.g. we don't want EOF accidentally returned from here
				return util.DefaultValue[T](), fmt.Errorf("filter failed for stream: %w", err)
			}
			if shouldKeep {
				return v, nil
			}
		}
	}, s.allLifecycleElement)
}

// Peek applies f to each item flowing through the stream without consuming it.
// Peek will not materialize the stream; f runs only if and when the stream is
// materialized.
func (s Stream[T]) Peek(f func(v T)) Stream[T] {
	return Map(
		s,
		func(v T) T {
			f(v)
			return v
		})
}

func (s Stream[T]) WithAdditionalLifecycle(lch Lifecycle) Stream[T] {
	return newStream(s.provider, append(s.allLifecycleElement, lch))
}

// FromLazy converts a Lazy to a stream of at most one item (or an error stream).
func FromLazy[T any](l lazy.Lazy[T]) Stream[T] {
	alreadyFetched := false
	return NewSimpleStream(func(ctx context.Context) (T, error) {
		if alreadyFetched {
			return util.DefaultValue[T](), io.EOF
		}
		alreadyFetched = true

		lazyValue, err := l.GetOptional(ctx)
		if err != nil {
			return util.DefaultValue[T](), err
		}
		if lazyValue == nil {
			return util.DefaultValue[T](), io.EOF
		}
		return *lazyValue, nil
	})
}

func doOpenStream[T any](ctx context.Context, s Stream[T]) (context.CancelFunc, error) {
	ctxWithCancel, cancelFunc := context.WithCancel(ctx)
	for lcIdx, l := range s.allLifecycleElement {
		err := l.Open(ctxWithCancel)
		if err != nil {
			// Close only the successfully opened lifecycle elements
			for i := 0; i < lcIdx; i++ {
				s.allLifecycleElement[i].Close()
			}
			cancelFunc()

			return nil, fmt.Errorf("failed to open stream lifecycle element %d: %w", lcIdx, err)
		}
	}
	return cancelFunc, nil
}

func doCloseStream[T any](s Stream[T]) {
	for _, l := range s.allLifecycleElement {
		l.Close()
	}
}
