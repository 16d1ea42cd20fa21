package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"materi/internal/config"
)

func Test_RenderHeader(t *testing.T) {
	t.Run("includes title and info", func(t *testing.T) {
		result := RenderHeader(60, "Materi Asinkron", "1/2 selesai")

		assert.Contains(t, result, "Materi Asinkron")
		assert.Contains(t, result, "1/2 selesai")
	})

	t.Run("truncates long titles", func(t *testing.T) {
		result := RenderHeader(30, strings.Repeat("x", 80), "info")

		assert.Contains(t, result, "…")
		assert.Contains(t, result, "info")
	})
}

func Test_RenderFooter(t *testing.T) {
	result := RenderFooter(40, "q quit")

	assert.Contains(t, result, "v"+config.Version)
	assert.Contains(t, result, "q quit")
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expect   string
	}{
		{name: "Fits", input: "Pengenalan", maxWidth: 20, expect: "Pengenalan"},
		{name: "Exact", input: "abc", maxWidth: 3, expect: "abc"},
		{name: "Cut", input: "Pengenalan", maxWidth: 5, expect: "Peng…"},
		{name: "Single cell", input: "abc", maxWidth: 1, expect: "…"},
		{name: "Zero", input: "abc", maxWidth: 0, expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxWidth)

			assert.Equal(t, tt.expect, result)
			assert.LessOrEqual(t, lipgloss.Width(result), max(tt.maxWidth, 0))
		})
	}
}

func Test_PadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{name: "Pads", input: "ab", width: 4, expect: "ab  "},
		{name: "Already wide", input: "abcd", width: 2, expect: "abcd"},
		{name: "Empty", input: "", width: 2, expect: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PadRight(tt.input, tt.width))
		})
	}
}
