package cli

import (
	"github.com/charmbracelet/lipgloss"

	"materi/internal/config"
)

// Headline and body styles
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")).MarginTop(1)
	titleMedium   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A"))
	bodyLarge     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	labelLarge    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Italic(true)
)

// Semantic styles
var (
	sectionHeader = headlineLarge.MarginBottom(1)

	commandName = titleMedium
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))

	successText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A"))
	errorText   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626"))
	mutedText   = labelLarge

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}
