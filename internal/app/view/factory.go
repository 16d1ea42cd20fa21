package view

import (
	"materi/internal/app/bus"
	"materi/internal/app/catalog"
	"materi/internal/app/dom"
	"materi/internal/app/progress"
	"materi/internal/app/render"
	"materi/internal/app/report"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// Factory builds controllers sharing the catalog, progress store and renderer
type Factory struct {
	opts     Options
	provider catalog.Provider
	store    progress.Store
	renderer *render.Renderer
	bus      bus.Bus
	reporter report.Reporter
	log      logger.Logger
}

// OptionsFromConfig reads controller options from the application config
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		InitialWeek: cfg.Catalog.InitialWeek,
		Timeout:     cfg.Progress.Timeout,
		Lifetime:    cfg.Notifications.Lifetime,
	}
}

// NewFactory creates a Factory
func NewFactory(
	opts Options,
	provider catalog.Provider,
	store progress.Store,
	renderer *render.Renderer,
	b bus.Bus,
	reporter report.Reporter,
	log logger.Logger,
) *Factory {
	return &Factory{
		opts:     opts,
		provider: provider,
		store:    store,
		renderer: renderer,
		bus:      b,
		reporter: reporter,
		log:      log,
	}
}

// New creates an unmounted controller rendering into doc
func (f *Factory) New(id string, doc *dom.Document) *Controller {
	log := f.log.WithView(id)

	c := &Controller{
		id:       id,
		opts:     f.opts,
		provider: f.provider,
		store:    f.store,
		renderer: f.renderer,
		doc:      doc,
		bus:      f.bus,
		reporter: f.reporter,
		log:      log,
	}

	c.notifier = NewNotifier(id, doc, f.renderer, f.opts.Lifetime, f.bus, log)
	c.lifecycle = newLifecycle(id, log, c.install, c.teardown)

	return c
}

// Renderer returns the shared renderer
func (f *Factory) Renderer() *render.Renderer {
	return f.renderer
}
