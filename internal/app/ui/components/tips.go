package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Serve the page in a browser with ") + tipKey("materi serve"),
	tipDesc("Print a week as html with ") + tipKey("materi render --week 2"),
	tipDesc("Use ") + tipKey("tab") + tipDesc(" to move between weeks"),
	tipDesc("Use ") + tipKey("j/k") + tipDesc(" or arrows to pick a course"),
	tipDesc("Use ") + tipKey("h/l") + tipDesc(" to step through videos"),
	tipDesc("Press ") + tipKey("space") + tipDesc(" to mark the course as complete"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to hide these tips"),
}
