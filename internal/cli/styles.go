package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Success styling
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Subtle text styling
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	// Suggested command styling
	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)
)

// renderProjectCreated renders a summary after a successful scaffold run.
func renderProjectCreated(name string) string {
	var b strings.Builder

	b.WriteString(successStyle.Render("✓ Created " + name))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("Next steps:"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("cd "+name) + "\n")
	b.WriteString("  " + commandStyle.Render("napi build") + "\n")
	b.WriteString("  " + commandStyle.Render("napi test"))

	return b.String()
}
