package catalog

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher selects which files in the catalog directory are week files
type Matcher interface {
	Match(path string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	includes []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher compiles include and ignore patterns, matched against the base name of a path
func NewMatcher(includes, ignores []string) (Matcher, error) {
	m := &matcher{
		includes: make([]glob.Glob, 0, len(includes)),
		ignores:  make([]glob.Glob, 0, len(ignores)),
	}

	for _, p := range includes {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		m.includes = append(m.includes, g)
	}

	for _, p := range ignores {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// Match returns true if the file name matches an include pattern and no ignore pattern
func (m *matcher) Match(path string) bool {
	name := filepath.Base(filepath.ToSlash(path))
	name = strings.ToLower(name)

	for _, ignore := range m.ignores {
		if ignore.Match(name) {
			return false
		}
	}

	for _, include := range m.includes {
		if include.Match(name) {
			return true
		}
	}

	return false
}
