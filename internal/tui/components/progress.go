package components

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForUsed returns the budget bar color for the fraction already spent.
func ColorForUsed(fraction float64) lipgloss.Color {
	t := theme.Active
	switch {
	case fraction >= 1:
		return t.Red
	case fraction >= 0.8:
		return t.Orange
	case fraction >= 0.5:
		return t.Yellow
	default:
		return t.Green
	}
}

// BudgetBar renders a labeled bar of the budget fraction used.
func BudgetBar(label string, fraction float64, width int) string {
	t := theme.Active
	fraction = min(max(fraction, 0), 1)
	color := ColorForUsed(fraction)

	barW := max(width-lipgloss.Width(label)-6, 4)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return lipgloss.NewStyle().Foreground(t.TextMuted).Render(label) + " " +
		bar.ViewAs(fraction) + " " +
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%3.0f%%", fraction*100))
}
