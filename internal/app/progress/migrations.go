package progress

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"materi/internal/app/errors"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migration is one versioned schema change
type Migration struct {
	Version int
	Up      string
	Down    string
}

// loadMigrations reads NNNN_name_up.sql / NNNN_name_down.sql pairs sorted by version
func loadMigrations() ([]Migration, error) {
	entries, err := migrationFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	byVersion := make(map[int]*Migration)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		prefix, _, found := strings.Cut(name, "_")
		if !found {
			continue
		}

		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}

		content, err := migrationFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version}
			byVersion[version] = m
		}

		switch {
		case strings.HasSuffix(name, "_up.sql"):
			m.Up = string(content)
		case strings.HasSuffix(name, "_down.sql"):
			m.Down = string(content)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" || m.Down == "" {
			return nil, fmt.Errorf("incomplete migration for version %d", m.Version)
		}

		migrations = append(migrations, *m)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// Migrate applies every migration not yet recorded in schema_migrations
func Migrate(ctx context.Context, db *sql.DB) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		var applied bool

		err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)", m.Version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.Version, err)
		}

		if applied {
			continue
		}

		if err := execScript(ctx, db, m.Up, "INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// Rollback reverts the most recently applied migration
func Rollback(ctx context.Context, db *sql.DB) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}

	if current == 0 {
		return fmt.Errorf("no migrations to roll back")
	}

	for _, m := range migrations {
		if m.Version == current {
			return execScript(ctx, db, m.Down, "DELETE FROM schema_migrations WHERE version = ?", m.Version)
		}
	}

	return fmt.Errorf("migration version %d not found", current)
}

// SchemaVersion returns the latest applied migration, 0 when none is recorded
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var current sql.NullInt64
	if err := db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_migrations").Scan(&current); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	return int(current.Int64), nil
}

// MigrateDatabase opens the sqlite database at dsn, applies pending migrations or reverts
// the latest one when down is set, and returns the resulting schema version
func MigrateDatabase(ctx context.Context, dsn string, down bool) (int, error) {
	if dsn == "" {
		return 0, errors.ErrProgressDSNRequired
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrProgressUnavailable, err)
	}
	defer db.Close()

	if down {
		err = Rollback(ctx, db)
	} else {
		err = Migrate(ctx, db)
	}

	if err != nil {
		return 0, err
	}

	return SchemaVersion(ctx, db)
}

// execScript runs each statement of script and the bookkeeping query in one transaction
func execScript(ctx context.Context, db *sql.DB, script, record string, version int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stripComments(stmt))
		if stmt == "" {
			continue
		}

		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w\nStatement: %s", err, stmt)
		}
	}

	if _, err := tx.ExecContext(ctx, record, version); err != nil {
		return err
	}

	return tx.Commit()
}

func stripComments(stmt string) string {
	lines := strings.Split(stmt, "\n")
	kept := lines[:0]

	for _, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}

		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
