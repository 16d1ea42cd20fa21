package server

import (
	"go.uber.org/fx"

	"materi/internal/app/bus"
	"materi/internal/app/report"
	"materi/internal/app/view"
	"materi/internal/app/worker"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// Module provides the HTTP host
var Module = fx.Module("server",
	worker.Module,
	fx.Provide(
		func(factory *view.Factory, pool worker.Pool, log logger.Logger) *Registry {
			return NewRegistry(factory, pool, log.WithComponent("SESSIONS"))
		},
		func(cfg *config.Config, registry *Registry, b bus.Bus, reporter report.Reporter, log logger.Logger) Server {
			return NewServer(cfg, registry, b, reporter, log.WithComponent("SERVER"))
		},
	),
)
