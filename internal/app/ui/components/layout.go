package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"materi/internal/config"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(width int, title, info string) string {
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if titleWidth > maxTitleWidth && maxTitleWidth > 0 {
		title = Truncate(title, maxTitleWidth)
		titleWidth = lipgloss.Width(title)
	}

	separatorWidth := width - titleWidth - infoWidth - HeaderFixedChars
	if separatorWidth < HeaderSeparatorMinWidth {
		separatorWidth = HeaderSeparatorMinWidth
	}

	return HeaderStyle.Render(RenderLine(3) + " " + title + " " + RenderLine(separatorWidth) + " " + info + " " + RenderLine(3))
}

// RenderFooter renders the footer with version line and help text
func RenderFooter(width int, helpText string) string {
	version := fmt.Sprintf("v%s", config.Version)
	versionWidth := lipgloss.Width(version)

	separatorWidth := width - versionWidth - FooterFixedChars
	if separatorWidth < FooterSeparatorMinWidth {
		separatorWidth = FooterSeparatorMinWidth
	}

	versionLine := RenderLine(separatorWidth) + " " + version + " " + RenderLine(3)
	help := FooterHelpStyle.Render(HelpStyle.Render(helpText))

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, versionLine, help))
}

// RenderContent wraps content with spacing
func RenderContent(content string) string {
	return ContentStyle.Render(content)
}

// Truncate shortens s to maxWidth cells, ending with an ellipsis when cut
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}

// PadRight pads s with spaces up to width cells
func PadRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}
