package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	FgPrimary = lipgloss.Color("#2563EB") // Blue - active tab and course
	FgMuted   = lipgloss.Color("7")       // Light gray - secondary text
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	BgSelection = lipgloss.Color("235")

	FgCompleted = lipgloss.Color("10") // Green - completed courses
	FgProgress  = lipgloss.Color("12") // Light blue - partial week progress
	FgError     = lipgloss.Color("9")
	FgInfo      = lipgloss.Color("14")
)

// DownloadColors distinguish the two supporting material links
var DownloadColors = map[string]lipgloss.AdaptiveColor{
	"download-materi":    {Light: "#2563eb", Dark: "#60a5fa"},
	"download-notulensi": {Light: "#059669", Dark: "#34d399"},
}
