package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{100, 4, []int{25, 25, 25, 25}},
		{10, 3, []int{4, 3, 3}},
		{7, 0, nil},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
		sum := 0
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d)[%d] = %d, want %d", tt.total, tt.n, i, got[i], tt.want[i])
			}
			sum += got[i]
		}
		if tt.n > 0 && sum != tt.total {
			t.Errorf("widths sum to %d, want %d", sum, tt.total)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Spent", Value: "$1,204.50"},
		{Label: "Remaining", Value: "$795.50", Color: theme.Active.Green},
		{Label: "Per Day", Value: "$72.32", Note: "11 days left"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
	if !strings.Contains(row, "$795.50") {
		t.Error("row is missing a metric value")
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	short := ContentCard("Short", "A", 22)
	tall := ContentCard("Tall", "1\n2\n3\n4\n5", 22)

	joined := CardRow([]string{tall, short})
	if got, want := lipgloss.Height(joined), lipgloss.Height(tall); got != want {
		t.Errorf("joined height = %d, want %d", got, want)
	}
	if CardRow(nil) != "" {
		t.Error("CardRow(nil) should be empty")
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want 10", got)
	}
}

func TestCategoryBar(t *testing.T) {
	tests := []struct {
		value, maxValue float64
		wantFilled      int
	}{
		{50, 100, 10},
		{100, 100, 20},
		{0.01, 100, 1},
		{0, 100, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		bar := CategoryBar(expense.Food, tt.value, tt.maxValue, 20)
		if w := lipgloss.Width(bar); w != 20 {
			t.Errorf("CategoryBar(%v, %v) width = %d, want 20", tt.value, tt.maxValue, w)
		}
		if got := strings.Count(bar, "█"); got != tt.wantFilled {
			t.Errorf("CategoryBar(%v, %v) filled = %d, want %d", tt.value, tt.maxValue, got, tt.wantFilled)
		}
	}
}

func TestSparkline(t *testing.T) {
	if Sparkline(nil, theme.Active.Accent) != "" {
		t.Error("empty input should render nothing")
	}
	got := Sparkline([]float64{0, 5, 10}, theme.Active.Accent)
	if !strings.Contains(got, "▁") || !strings.Contains(got, "█") {
		t.Errorf("Sparkline = %q, want lowest and highest blocks", got)
	}
	if w := lipgloss.Width(got); w != 3 {
		t.Errorf("width = %d, want 3", w)
	}
}

func TestColorForUsed(t *testing.T) {
	th := theme.Active
	tests := []struct {
		fraction float64
		want     lipgloss.Color
	}{
		{0.1, th.Green},
		{0.6, th.Yellow},
		{0.85, th.Orange},
		{1, th.Red},
	}
	for _, tt := range tests {
		if got := ColorForUsed(tt.fraction); got != tt.want {
			t.Errorf("ColorForUsed(%v) = %v, want %v", tt.fraction, got, tt.want)
		}
	}
}

func TestBudgetBarShowsPercent(t *testing.T) {
	bar := BudgetBar("Used", 0.6, 40)
	if !strings.Contains(bar, "60%") {
		t.Errorf("BudgetBar missing percent: %q", bar)
	}
	if !strings.Contains(BudgetBar("Used", 3, 40), "100%") {
		t.Error("fraction above 1 should clamp to 100%")
	}
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(80, "Added Expense: Coffee")
	if w := lipgloss.Width(bar); w != 80 {
		t.Errorf("width = %d, want 80", w)
	}
	if !strings.Contains(bar, "Added Expense: Coffee") {
		t.Error("flash message missing")
	}
	if !strings.Contains(RenderStatusBar(80, ""), "[q]uit") {
		t.Error("key hints missing")
	}
}
