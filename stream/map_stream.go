package stream

import (
	"context"
	"fmt"

	"github.com/ChAoSUnItY/metamorphosis"
	"github.com/ChAoSUnItY/metamorphosis/internal/util"
)

// Map maps the source stream to a target stream using the provided mapper
// function. The mapper is invoked lazily, once per pulled item.
func Map[SRC any, TGT any](
	src Stream[SRC],
	mapper metamorphosis.Mapper[SRC, TGT],
) Stream[TGT] {
	return MapWithErrAndCtx(src, mapper.ToErrCtx())
}

// MapWithErr maps the source stream to a target stream using the provided mapper function.
func MapWithErr[SRC any, TGT any](
	src Stream[SRC],
	mapper metamorphosis.MapperWithErr[SRC, TGT],
) Stream[TGT] {
	return MapWithErrAndCtx(src, mapper.ToErrCtx())
}

// MapWithErrAndCtx maps the source stream to a target stream using the provided mapper function.
func MapWithErrAndCtx[SRC any, TGT any](
	src Stream[SRC],
	mapper metamorphosis.MapperWithErrAndCtx[SRC, TGT],
) Stream[TGT] {
	return newStream[TGT](
		func(ctx context.Context) (TGT, error) {
			v, err := src.provider(ctx)
			if err != nil {
				return util.DefaultValue[TGT](), err
			}
			tgt, err := mapper(ctx, v)
			if err != nil {
				// Wrapping errors, e.g. we don't want EOF accidentally returned from here
				return util.DefaultValue[TGT](), fmt.Errorf("map failed for stream: %w", err)
			}
			return tgt, nil
		}, src.allLifecycleElement,
	)
}
