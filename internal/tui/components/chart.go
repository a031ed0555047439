package components

import (
	"strings"

	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders one block per value, scaled to the largest value.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// CategoryColor gives each category a stable color from the active theme.
func CategoryColor(c expense.Category) lipgloss.Color {
	t := theme.Active
	switch c {
	case expense.Food:
		return t.Orange
	case expense.Home:
		return t.Blue
	case expense.Work:
		return t.Cyan
	case expense.Fun:
		return t.Magenta
	default:
		return t.Yellow
	}
}

// CategoryBar renders a bar of width*value/maxValue cells in c's color.
func CategoryBar(c expense.Category, value, maxValue float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxValue > 0 && value > 0 {
		filled = max(int(value/maxValue*float64(width)), 1)
	}
	filled = min(filled, width)

	return lipgloss.NewStyle().Foreground(CategoryColor(c)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render(strings.Repeat("░", width-filled))
}
