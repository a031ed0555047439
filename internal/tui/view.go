package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/report"
	"github.com/theirongolddev/spent/internal/tui/components"
	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.loadErr != nil {
		return a.viewError()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) viewTooNarrow() string {
	return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  spent needs at least %d columns.\n",
		a.width, minTerminalWidth)
}

func (a App) viewLoading() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(
			lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ spent") + "\n\n" +
				a.spinner.View() +
				lipgloss.NewStyle().Foreground(t.TextMuted).Render(" Reading expenses..."),
		)

	return lipgloss.Place(a.width, max(a.height, 8), lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewError() string {
	t := theme.Active
	body := lipgloss.NewStyle().Foreground(t.Red).Render(a.loadErr.Error()) + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render("[r]eload  [q]uit")
	return "\n" + components.ContentCard("Could not read data", body, a.contentWidth())
}

func (a App) viewForm() string {
	t := theme.Active
	title := "Add Expense"
	if a.formKind == formBudget {
		title = "Set " + a.cfg.BudgetLabel()
	}

	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n")
	if a.flash != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Render("  " + a.flash))
		b.WriteString("\n")
	}
	b.WriteString(components.ContentCard(title, a.form.View(), a.contentWidth()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(" enter to confirm · esc to cancel"))
	return b.String()
}

func (a App) header() string {
	t := theme.Active
	today := a.summary.Today
	if today.IsZero() {
		today = a.now()
	}
	return lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(" ◈ spent") +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · as of "+today.Format("Jan 2, 2006"))
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()
	s := a.summary
	sym := a.cfg.Display.CurrencySymbol

	remainingColor := t.Green
	if s.Overspent {
		remainingColor = t.Red
	}

	metrics := []components.Metric{
		{Label: "Spent", Value: cli.FormatMoney(s.Total, sym), Note: cli.FormatNumber(int64(s.Count)) + " expenses"},
		{Label: "Remaining", Value: cli.FormatMoney(s.Remaining, sym), Color: remainingColor,
			Note: "of " + cli.FormatMoney(s.Budget, sym)},
		{Label: "Per Day", Value: cli.FormatMoney(s.DailyAllowance, sym), Color: t.Green},
		{Label: "Days Left", Value: cli.FormatDays(s.DaysLeft)},
	}

	halves := components.LayoutRow(cw, 2)

	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")
	if s.Budget.IsPositive() {
		b.WriteString(" ")
		b.WriteString(components.BudgetBar(a.cfg.BudgetLabel()+" used", s.UsedFraction, cw-2))
		b.WriteString("\n")
	}
	b.WriteString(components.CardRow([]string{
		components.ContentCard("By Category", a.renderCategories(s, components.CardInnerWidth(halves[0])), halves[0]),
		components.ContentCard("Recent", a.renderRecent(components.CardInnerWidth(halves[1])), halves[1]),
	}))
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(cw, a.flash))
	return b.String()
}

func (a App) renderCategories(s report.Summary, width int) string {
	t := theme.Active
	if s.Categories.Len() == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses yet. Press a to add one.")
	}

	peak := 0.0
	for _, sum := range s.Categories.All() {
		peak = max(peak, sum.InexactFloat64())
	}

	const labelW, amountW = 9, 12
	barW := max(width-labelW-amountW-2, 4)

	var lines []string
	for c, sum := range s.Categories.All() {
		label := lipgloss.NewStyle().Foreground(components.CategoryColor(c)).Render(padRight(c.Label(), labelW))
		amount := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(
			padLeft(cli.FormatMoney(sum, a.cfg.Display.CurrencySymbol), amountW))
		lines = append(lines, label+" "+components.CategoryBar(c, sum.InexactFloat64(), peak, barW)+" "+amount)
	}
	return strings.Join(lines, "\n")
}

func (a App) renderRecent(width int) string {
	t := theme.Active
	recent := report.Recent(a.records, recentRows)
	if len(recent) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing logged yet.")
	}

	const amountW = 12
	nameW := max(width-amountW-4, 6)

	lines := make([]string, 0, len(recent)+1)
	for _, e := range recent {
		icon := lipgloss.NewStyle().Foreground(components.CategoryColor(e.Category())).Render(categoryIcon(e.Category()))
		name := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(padRight(truncate(e.Name(), nameW), nameW))
		amount := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
			padLeft(cli.FormatMoney(e.Amount(), a.cfg.Display.CurrencySymbol), amountW))
		lines = append(lines, icon+" "+name+" "+amount)
	}

	values := make([]float64, 0, len(a.records))
	for _, e := range a.records[max(len(a.records)-width, 0):] {
		values = append(values, e.Amount().InexactFloat64())
	}
	lines = append(lines, components.Sparkline(values, t.Accent))

	return strings.Join(lines, "\n")
}

func categoryIcon(c expense.Category) string {
	label := c.Label()
	if i := strings.IndexByte(label, ' '); i > 0 {
		return label[:i]
	}
	return "•"
}

func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(w-lipgloss.Width(s), 0)) + s
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
