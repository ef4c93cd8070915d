package stream

import (
	"context"
	"io"
	"slices"

	"github.com/ChAoSUnItY/metamorphosis/internal/util"
)

// Just creates a stream from the given items. The resulting stream is
// restartable: every materialization replays the items from the start.
func Just[T any](items ...T) Stream[T] {
	return NewStream(&justStream[T]{slcOrig: items})
}

type justStream[T any] struct {
	slcOrig []T
	slc     []T
}

func (j *justStream[T]) Open(_ context.Context) error {
	if j.slcOrig != nil {
		j.slc = slices.Clone(j.slcOrig)
	}
	return nil
}

func (j *justStream[T]) Close() {
	j.slc = nil
}

func (j *justStream[T]) Emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	if len(j.slc) == 0 {
		return util.DefaultValue[T](), io.EOF
	}
	v := j.slc[0]
	j.slc = j.slc[1:]
	return v, nil
}
