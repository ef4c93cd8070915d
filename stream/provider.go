package stream

import "context"

// Provider is what a stream source implements: the lifecycle methods Open and
// Close, and a generator method Emit returning the next item.
type Provider[T any] interface {
	Lifecycle

	// Emit returns the next item in the stream, or an error.
	// When the stream is exhausted it must return io.EOF; the stream
	// machinery handles io.EOF and never propagates it to the caller.
	// Emit is never called concurrently. The machinery checks for context
	// cancellation between calls to Emit; respecting cancellation inside a
	// single Emit call is the provider's responsibility.
	Emit(ctx context.Context) (T, error)
}

// Lifecycle is an interface that is used to add functionality to the stream lifecycle.
type Lifecycle interface {
	Open(ctx context.Context) error
	Close()
}

type lifecycleWrapper struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func NewLifecycle(openFunc func(ctx context.Context) error, closeFunc func()) Lifecycle {
	return &lifecycleWrapper{openFunc: openFunc, closeFunc: closeFunc}
}

func (s *lifecycleWrapper) Open(ctx context.Context) error {
	if s.openFunc != nil {
		return s.openFunc(ctx)
	}
	return nil
}

func (s *lifecycleWrapper) Close() {
	if s.closeFunc != nil {
		s.closeFunc()
	}
}
