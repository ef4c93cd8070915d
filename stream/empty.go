package stream

import (
	"context"
	"io"

	"github.com/ChAoSUnItY/metamorphosis/internal/util"
)

func Empty[T any]() Stream[T] {
	return newStream(func(_ context.Context) (T, error) {
		return util.DefaultValue[T](), io.EOF
	}, nil)
}
