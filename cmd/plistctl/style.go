package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// styled renders s with st unless color is disabled. lipgloss already
// drops styling when stdout is not a terminal.
func styled(st lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return st.Render(s)
}

func markChanged() string { return styled(changedStyle, "✓") }

func markSkipped() string { return styled(skippedStyle, "-") }

func header(s string) string { return styled(headerStyle, s) }
