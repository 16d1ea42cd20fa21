//go:generate mockgen -source=store.go -destination=store_mock.go -package=progress
package progress

import (
	"context"
	"fmt"

	"materi/internal/app/errors"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// Map holds completion flags keyed by week and course title
type Map map[int]map[string]bool

// Store persists which courses a learner has completed
type Store interface {
	GetCourseProgress(ctx context.Context) (Map, error)
	RecordCourseCompletion(ctx context.Context, week int, title string) error
	Close() error
}

// Week returns the completion flags of a single week, never nil
func (m Map) Week(id int) map[string]bool {
	if w, ok := m[id]; ok && w != nil {
		return w
	}

	return map[string]bool{}
}

// Completed counts how many of the given titles are marked complete in a week
func (m Map) Completed(week int, titles []string) int {
	flags := m[week]
	count := 0

	for _, t := range titles {
		if flags[t] {
			count++
		}
	}

	return count
}

// New creates the store selected by the progress driver
func New(cfg *config.Config, log logger.Logger) (Store, error) {
	switch cfg.Progress.Driver {
	case config.DriverMemory:
		log.Debug().Msg("Using in-memory progress store")
		return NewMemoryStore(), nil
	case config.DriverSQLite:
		log.Debug().Msgf("Using sqlite progress store at %s", cfg.Progress.DSN)
		return NewSQLiteStore(cfg.Progress.DSN, cfg.Progress.User)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidProgressDriver, cfg.Progress.Driver)
	}
}

func validate(week int, title string) error {
	if week <= 0 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidWeekID, week)
	}

	if title == "" {
		return errors.ErrEmptyCourseTitle
	}

	return nil
}
