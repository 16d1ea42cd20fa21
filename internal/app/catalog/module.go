package catalog

import (
	"context"

	"go.uber.org/fx"

	"materi/internal/app/bus"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// Module provides the catalog provider and its file watcher
var Module = fx.Module("catalog",
	fx.Provide(
		func(cfg *config.Config, log logger.Logger) (Provider, error) {
			return NewProvider(cfg, log.WithComponent("CATALOG"))
		},
		func(lc fx.Lifecycle, cfg *config.Config, p Provider, b bus.Bus, log logger.Logger) (Watcher, error) {
			w, err := NewWatcher(cfg, p, b, log.WithComponent("WATCHER"))
			if err != nil {
				return nil, err
			}

			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					w.Close()
					return nil
				},
			})

			return w, nil
		},
	),
)
