package stream

import (
	"context"
	"io"

	"github.com/ChAoSUnItY/metamorphosis/internal/util"
)

// Limit truncates the stream to at most limit items. The source is never
// pulled past the limit. The derived stream is single-use: its counter is not
// reset between materializations, so a second pass yields nothing even over a
// restartable source.
func (s Stream[T]) Limit(limit int) Stream[T] {
	if limit <= 0 {
		return Empty[T]()
	}
	alreadyConsumed := 0
	return newStream[T](func(ctx context.Context) (T, error) {
		if alreadyConsumed >= limit {
			return util.DefaultValue[T](), io.EOF
		}

		v, err := s.provider(ctx)
		if err != nil {
			// this covers for both EOF and any other error
			return util.DefaultValue[T](), err
		}
		alreadyConsumed++
		return v, nil
	}, s.allLifecycleElement)
}
