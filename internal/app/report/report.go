//go:generate mockgen -source=report.go -destination=report_mock.go -package=report
package report

import (
	"time"

	"github.com/getsentry/sentry-go"

	"materi/internal/config"
	"materi/internal/config/logger"
)

// FlushTimeout bounds how long pending reports are drained on shutdown
const FlushTimeout = 2 * time.Second

// Reporter forwards failures to an external error tracker
type Reporter interface {
	Capture(err error, tags map[string]string)
	Flush(timeout time.Duration) bool
}

// sentryReporter sends failures to Sentry through a dedicated hub
type sentryReporter struct {
	hub *sentry.Hub
	log logger.Logger
}

// New creates a Sentry-backed reporter when a DSN is configured, a no-op reporter otherwise
func New(cfg *config.Config, log logger.Logger) (Reporter, error) {
	if cfg.Report.DSN == "" {
		return NoOp(), nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.Report.DSN,
		Environment: cfg.Report.Environment,
		Release:     config.AppName + "@" + config.Version,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("Error reporting enabled for environment '%s'", cfg.Report.Environment)

	return &sentryReporter{
		hub: sentry.NewHub(client, sentry.NewScope()),
		log: log,
	}, nil
}

// Capture reports err with the given tags attached to its scope
func (r *sentryReporter) Capture(err error, tags map[string]string) {
	if err == nil {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}

		if id := r.hub.CaptureException(err); id != nil {
			r.log.Debug().Msgf("Reported error as event %s", *id)
		}
	})
}

// Flush waits for queued reports to be delivered
func (r *sentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

// NoOp returns a reporter that drops everything
func NoOp() Reporter {
	return noOpReporter{}
}

type noOpReporter struct{}

func (noOpReporter) Capture(err error, tags map[string]string) {}
func (noOpReporter) Flush(timeout time.Duration) bool          { return true }
