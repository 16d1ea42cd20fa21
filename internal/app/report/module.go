package report

import (
	"context"

	"go.uber.org/fx"

	"materi/internal/config"
	"materi/internal/config/logger"
)

// Module provides the error reporter and flushes it on shutdown
var Module = fx.Module("report",
	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) (Reporter, error) {
		r, err := New(cfg, log.WithComponent("REPORT"))
		if err != nil {
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				r.Flush(FlushTimeout)
				return nil
			},
		})

		return r, nil
	}),
)
