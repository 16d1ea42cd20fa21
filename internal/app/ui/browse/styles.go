package browse

import (
	"github.com/charmbracelet/lipgloss"

	"materi/internal/app/ui/components"
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(components.FgMuted).
			Padding(0, 1)

	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(components.FgPrimary).
			Underline(true)

	weekTitleStyle = lipgloss.NewStyle().
			Bold(true)

	counterStyle = lipgloss.NewStyle().
			Foreground(components.FgPrimary)

	courseRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	activeCourseRowStyle = courseRowStyle.
				Bold(true).
				Foreground(components.FgPrimary).
				Background(components.BgSelection)

	markerStyle = lipgloss.NewStyle().
			Foreground(components.FgMuted).
			Width(3)

	completedMarkerStyle = markerStyle.
				Foreground(components.FgCompleted)

	badgeCheckStyle = lipgloss.NewStyle().
			Foreground(components.FgCompleted)

	badgeFractionStyle = lipgloss.NewStyle().
				Foreground(components.FgProgress)

	meterStyle = lipgloss.NewStyle().
			Foreground(components.FgCompleted)

	courseHeadingStyle = lipgloss.NewStyle().
				Bold(true)

	completedBadgeStyle = lipgloss.NewStyle().
				Foreground(components.FgCompleted).
				PaddingLeft(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(components.FgMuted)

	disabledStyle = lipgloss.NewStyle().
			Foreground(components.FgBorder).
			Strikethrough(true)

	controlStyle = lipgloss.NewStyle().
			Foreground(components.FgPrimary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)
)
