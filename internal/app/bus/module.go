package bus

import (
	"context"

	"go.uber.org/fx"

	"materi/internal/config/logger"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(func(lc fx.Lifecycle, log logger.Logger) Bus {
		b := New(BufferSize, log.WithComponent("BUS"))

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				b.Close()
				return nil
			},
		})

		return b
	}),
)
