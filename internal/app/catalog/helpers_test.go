package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const weekOneYAML = `week: 1
title: "Pekan 1: Pengenalan"
materials:
  - title: A
    description: First course
    videos:
      - title: Intro
        url: https://www.youtube.com/embed/a1
    download:
      materi: https://example.com/a.pdf
      notulensi: "#"
  - title: B
    description: Second course
    videos:
      - title: Part 1
        url: https://www.youtube.com/embed/b1
      - title: Part 2
        url: https://www.youtube.com/embed/b2
`

const weekTwoTOML = `week = 2
title = "Pekan 2: Lanjutan"

[[materials]]
title = "C"
description = "Third course"

  [[materials.videos]]
  title = "Only"
  url = "https://www.youtube.com/embed/c1"

  [materials.download]
  materi = "https://example.com/c.pdf"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func testMatcher(t *testing.T) Matcher {
	t.Helper()

	m, err := NewMatcher([]string{"*.yaml", "*.yml", "*.toml"}, []string{"_*", ".*"})
	require.NoError(t, err)

	return m
}
