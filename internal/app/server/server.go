package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"materi/internal/app/bus"
	"materi/internal/app/render"
	"materi/internal/app/report"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// Session housekeeping
const (
	SessionIdle   = 30 * time.Minute
	SweepInterval = time.Minute
)

// Server hosts the materials page over HTTP
type Server interface {
	Handler() http.Handler
	Serve(ctx context.Context, ln net.Listener) error
}

type server struct {
	cfg      config.ServerConfig
	registry *Registry
	bus      bus.Bus
	reporter report.Reporter
	log      logger.Logger
	router   chi.Router
}

// NewServer creates a Server over registry
func NewServer(cfg *config.Config, registry *Registry, b bus.Bus, reporter report.Reporter, log logger.Logger) Server {
	s := &server{
		cfg:      cfg.Server,
		registry: registry,
		bus:      b,
		reporter: reporter,
		log:      log,
	}

	s.router = s.routes()

	return s
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Get("/", s.index)
	r.Post(render.ActionPath, s.action)

	return r
}

// Handler returns the routed handler
func (s *server) Handler() http.Handler {
	return s.router
}

// Serve serves on ln until ctx is done, then shuts down gracefully
func (s *server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go s.housekeep(ctx, s.bus.Subscribe(ctx))

	errCh := make(chan error, 1)

	go func() {
		s.log.Info().Msgf("Serving materials on http://%s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.registry.Close()
	s.log.Info().Msg("Server stopped")

	return err
}

// housekeep reloads sessions after catalog changes and drops idle ones
func (s *server) housekeep(ctx context.Context, events <-chan bus.Message) {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-events:
			if !ok {
				return
			}

			if msg.Type == bus.EventCatalogReloaded {
				s.registry.ReloadAll(ctx)
			}
		case <-ticker.C:
			s.registry.Sweep(SessionIdle)
		}
	}
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Debug().Msgf("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
