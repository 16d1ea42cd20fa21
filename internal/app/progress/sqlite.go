package progress

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"materi/internal/app/errors"
)

// MemoryDSN opens a private in-memory database
const MemoryDSN = ":memory:"

// sqliteStore keeps progress for one user in a SQLite database
type sqliteStore struct {
	db   *sql.DB
	user string
}

// NewSQLiteStore opens dsn, applies pending migrations and scopes all queries to user
func NewSQLiteStore(dsn, user string) (Store, error) {
	if dsn == "" {
		return nil, errors.ErrProgressDSNRequired
	}

	if user == "" {
		return nil, errors.ErrInvalidProgressUser
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrProgressUnavailable, err)
	}

	// every pooled connection to :memory: would see its own empty database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", errors.ErrProgressUnavailable, err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", errors.ErrProgressUnavailable, err)
	}

	return &sqliteStore{db: db, user: user}, nil
}

// GetCourseProgress returns every completed course of the user
func (s *sqliteStore) GetCourseProgress(ctx context.Context) (Map, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT week, course_title FROM course_progress WHERE user_id = ? ORDER BY week, course_title",
		s.user,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToLoadProgress, err)
	}
	defer rows.Close()

	progress := make(Map)

	for rows.Next() {
		var (
			week  int
			title string
		)

		if err := rows.Scan(&week, &title); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToLoadProgress, err)
		}

		if progress[week] == nil {
			progress[week] = make(map[string]bool)
		}

		progress[week][title] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToLoadProgress, err)
	}

	return progress, nil
}

// RecordCourseCompletion inserts the completion once, later calls leave the row untouched
func (s *sqliteStore) RecordCourseCompletion(ctx context.Context, week int, title string) error {
	if err := validate(week, title); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO course_progress (user_id, week, course_title) VALUES (?, ?, ?)",
		s.user, week, title,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToRecordProgress, err)
	}

	return nil
}

// Close releases the database handle
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
