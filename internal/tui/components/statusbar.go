package components

import (
	"strings"

	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders key hints on the left and a flash message on the
// right, padded to width.
func RenderStatusBar(width int, flash string) string {
	t := theme.Active

	left := " [a]dd  [b]udget  [r]eload  [q]uit"
	right := ""
	if flash != "" {
		right = lipgloss.NewStyle().Foreground(t.Green).Render(flash) + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return lipgloss.NewStyle().Foreground(t.TextMuted).Render(left) +
		strings.Repeat(" ", padding) + right
}
