package catalog

import (
	"sync"

	"materi/internal/config"
	"materi/internal/config/logger"
)

// Provider hands out the current week catalog
type Provider interface {
	Catalog() WeekCatalog
	Reload() (WeekCatalog, error)
	Dir() string
	Matcher() Matcher
}

// provider keeps the last successfully loaded catalog
type provider struct {
	dir     string
	matcher Matcher
	current WeekCatalog
	log     logger.Logger
	mu      sync.RWMutex
}

// NewProvider creates a Provider over the configured catalog directory, nothing is read until Reload
func NewProvider(cfg *config.Config, log logger.Logger) (Provider, error) {
	m, err := NewMatcher(cfg.Catalog.Include, cfg.Catalog.Ignore)
	if err != nil {
		return nil, err
	}

	return &provider{
		dir:     cfg.Catalog.Dir,
		matcher: m,
		current: WeekCatalog{},
		log:     log,
	}, nil
}

// Catalog returns the current snapshot, callers must not mutate it
func (p *provider) Catalog() WeekCatalog {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.current
}

// Reload re-reads the directory, on failure the previous snapshot stays in place
func (p *provider) Reload() (WeekCatalog, error) {
	c, err := Load(p.dir, p.matcher)
	if err != nil {
		p.log.Warn().Err(err).Msgf("Failed to load catalog from %s", p.dir)
		return nil, err
	}

	p.mu.Lock()
	p.current = c
	p.mu.Unlock()

	p.log.Info().Msgf("Loaded %d week(s) from %s", len(c), p.dir)

	return c, nil
}

// Dir returns the catalog directory
func (p *provider) Dir() string {
	return p.dir
}

// Matcher returns the week file matcher
func (p *provider) Matcher() Matcher {
	return p.matcher
}

// static serves a fixed catalog
type static struct {
	catalog WeekCatalog
}

// Static returns a Provider that always yields c
func Static(c WeekCatalog) Provider {
	return static{catalog: c}
}

func (s static) Catalog() WeekCatalog         { return s.catalog }
func (s static) Reload() (WeekCatalog, error) { return s.catalog, nil }
func (s static) Dir() string                  { return "" }
func (s static) Matcher() Matcher             { return nil }
