package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"

	"materi/internal/app/errors"
)

// Load reads every week file in dir accepted by m and builds the catalog
func Load(dir string, m Matcher) (WeekCatalog, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", errors.ErrCatalogDirNotExist, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadCatalog, err)
	}

	catalog := make(WeekCatalog)
	sources := make(map[int]string)

	for _, entry := range entries {
		if entry.IsDir() || !m.Match(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		week, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		if prev, exists := sources[week.ID]; exists {
			return nil, fmt.Errorf("%w: week %d in %s and %s", errors.ErrDuplicateWeek, week.ID, prev, entry.Name())
		}

		sources[week.ID] = entry.Name()
		catalog[week.ID] = week
	}

	return catalog, nil
}

// LoadFile decodes a single week file, the format is chosen by extension
func LoadFile(path string) (Week, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Week{}, fmt.Errorf("%w: %w", errors.ErrFailedToReadCatalog, err)
	}

	var week Week

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&week); err != nil {
			return Week{}, fmt.Errorf("%w: %s: %w", errors.ErrFailedToParseCatalog, filepath.Base(path), err)
		}
	default:
		if err := yaml.Unmarshal(data, &week); err != nil {
			return Week{}, fmt.Errorf("%w: %s: %w", errors.ErrFailedToParseCatalog, filepath.Base(path), err)
		}
	}

	if err := normalize(&week); err != nil {
		return Week{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return week, nil
}

// normalize validates a decoded week and fills absent download links with the placeholder
func normalize(w *Week) error {
	if w.ID <= 0 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidWeekID, w.ID)
	}

	if w.Title == "" {
		w.Title = fmt.Sprintf("Pekan %d", w.ID)
	}

	seen := make(map[string]struct{}, len(w.Materials))

	for i := range w.Materials {
		c := &w.Materials[i]

		if c.Title == "" {
			return fmt.Errorf("%w: week %d course %d", errors.ErrEmptyCourseTitle, w.ID, i+1)
		}

		if _, dup := seen[c.Title]; dup {
			return fmt.Errorf("%w: '%s' in week %d", errors.ErrDuplicateCourse, c.Title, w.ID)
		}

		seen[c.Title] = struct{}{}

		if strings.TrimSpace(c.Download.Materi) == "" {
			c.Download.Materi = Placeholder
		}

		if strings.TrimSpace(c.Download.Notulensi) == "" {
			c.Download.Notulensi = Placeholder
		}
	}

	return nil
}
