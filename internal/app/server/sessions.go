package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"materi/internal/app/dom"
	"materi/internal/app/view"
	"materi/internal/app/worker"
	"materi/internal/config/logger"
)

// session is one browser tab worth of navigation state
type session struct {
	controller *view.Controller
	lastSeen   time.Time
}

// Registry keeps a mounted controller per browser session
type Registry struct {
	factory  *view.Factory
	pool     worker.Pool
	sessions map[string]*session
	now      func() time.Time
	log      logger.Logger
	mu       sync.Mutex
}

// NewRegistry creates an empty Registry, pool bounds concurrent reloads
func NewRegistry(factory *view.Factory, pool worker.Pool, log logger.Logger) *Registry {
	return &Registry{
		factory:  factory,
		pool:     pool,
		sessions: make(map[string]*session),
		now:      time.Now,
		log:      log,
	}
}

// Get returns the controller of session id
func (r *Registry) Get(id string) (*view.Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}

	s.lastSeen = r.now()

	return s.controller, true
}

// Open starts a session with a freshly mounted controller
func (r *Registry) Open(ctx context.Context) (string, *view.Controller, error) {
	shell, err := r.factory.Renderer().Shell()
	if err != nil {
		return "", nil, err
	}

	doc, err := dom.Parse(shell)
	if err != nil {
		return "", nil, err
	}

	id := uuid.NewString()
	c := r.factory.New(id, doc)

	if err := c.Mount(ctx); err != nil {
		c.Dispose()
		return "", nil, err
	}

	r.mu.Lock()
	r.sessions[id] = &session{controller: c, lastSeen: r.now()}
	r.mu.Unlock()

	r.log.Debug().Msgf("Opened session %s", id)

	return id, c, nil
}

// ReloadAll re-renders every session against the current catalog
func (r *Registry) ReloadAll(ctx context.Context) {
	controllers := r.controllers()

	r.pool.Each(ctx, len(controllers), func(ctx context.Context, i int) {
		if err := controllers[i].Reload(ctx); err != nil {
			r.log.Warn().Err(err).Msgf("Failed to reload session %s", controllers[i].ID())
		}
	})
}

// Sweep disposes sessions idle for longer than idle and returns how many were dropped
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()

	cutoff := r.now().Add(-idle)
	expired := make([]*view.Controller, 0)

	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			expired = append(expired, s.controller)
			delete(r.sessions, id)
		}
	}

	r.mu.Unlock()

	for _, c := range expired {
		c.Dispose()
	}

	if len(expired) > 0 {
		r.log.Debug().Msgf("Dropped %d idle session(s)", len(expired))
	}

	return len(expired)
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Close disposes every session
func (r *Registry) Close() {
	for _, c := range r.controllers() {
		c.Dispose()
	}

	r.mu.Lock()
	clear(r.sessions)
	r.mu.Unlock()
}

func (r *Registry) controllers() []*view.Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*view.Controller, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.controller)
	}

	return out
}
