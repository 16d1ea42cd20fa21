package progress

import (
	"context"

	"go.uber.org/fx"

	"materi/internal/config"
	"materi/internal/config/logger"
)

// Module provides the configured progress store and closes it on shutdown
var Module = fx.Module("progress",
	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) (Store, error) {
		s, err := New(cfg, log.WithComponent("PROGRESS"))
		if err != nil {
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return s.Close()
			},
		})

		return s, nil
	}),
)
