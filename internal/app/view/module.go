package view

import (
	"go.uber.org/fx"

	"materi/internal/app/bus"
	"materi/internal/app/catalog"
	"materi/internal/app/progress"
	"materi/internal/app/render"
	"materi/internal/app/report"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// Module provides the controller factory
var Module = fx.Module("view",
	fx.Provide(func(
		cfg *config.Config,
		provider catalog.Provider,
		store progress.Store,
		renderer *render.Renderer,
		b bus.Bus,
		reporter report.Reporter,
		log logger.Logger,
	) *Factory {
		return NewFactory(OptionsFromConfig(cfg), provider, store, renderer, b, reporter, log.WithComponent("VIEW"))
	}),
)
