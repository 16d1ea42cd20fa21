package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	AppContainerStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgBorder).
			Padding(0, 1)

	ActivePanelStyle = PanelStyle.
				BorderForeground(FgPrimary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder).
			Padding(0, 2)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	HeaderStyle = lipgloss.NewStyle()

	FooterStyle = lipgloss.NewStyle().MarginTop(1)

	FooterHelpStyle = lipgloss.NewStyle()

	ContentStyle = lipgloss.NewStyle().Padding(1, 0)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			MarginTop(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(FgPrimary)

	LoaderSpacerStyle = lipgloss.NewStyle().PaddingLeft(1)
)

// Notification styles by kind
var (
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(FgCompleted)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(FgError)
	InfoStyle    = lipgloss.NewStyle().Bold(true).Foreground(FgInfo)
)
