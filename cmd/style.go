package cmd

import "github.com/charmbracelet/lipgloss"

var (
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")

	passStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

// statusLine renders a one-line ✓/✗ message for the terminal.
func statusLine(ok bool, msg string) string {
	if ok {
		return passStyle.Render("✓") + " " + msg
	}
	return failStyle.Render("✗") + " " + msg
}
