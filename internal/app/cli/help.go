package cli

import "github.com/charmbracelet/lipgloss"

// renderHelp renders usage and examples
func renderHelp() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("materi")+"                           Browse materials in the terminal"),
		bodyMedium.Render("  "+commandName.Render("materi serve [--addr ADDR]")+"       Serve the materials page over HTTP"),
		bodyMedium.Render("  "+commandName.Render("materi render [--week N] [-f]")+"    Print a week's page as HTML"),
		bodyMedium.Render("  "+commandName.Render("materi complete <week> <title>")+"   Mark a course as completed"),
		bodyMedium.Render("  "+commandName.Render("materi migrate [--down]")+"          Apply or revert progress migrations"),
		bodyMedium.Render("  "+commandName.Render("materi version")+"                   Show version"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("materi serve --addr :9000")+"        Serve on port 9000"),
		bodyMedium.Render("  "+exampleCode.Render("materi render -w 2 > week2.html")+"  Save week 2 as a static page"),
		bodyMedium.Render("  "+exampleCode.Render(`materi complete 1 "Pengenalan Go"`)+" Record a completion"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Examples:"),
		examples,
	) + "\n"
}
