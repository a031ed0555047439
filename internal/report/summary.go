package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/expense"
)

// Summary holds everything a renderer needs for one report.
type Summary struct {
	Categories     *CategoryTotals
	Count          int
	Total          decimal.Decimal
	Budget         decimal.Decimal
	Remaining      decimal.Decimal
	DaysLeft       int
	DailyAllowance decimal.Decimal
	UsedFraction   float64 // spent/budget clamped to [0,1]; 0 when budget is 0
	Overspent      bool
	Today          time.Time
}

// Summarize builds the report for records against budget as of today.
func Summarize(records []expense.Expense, budget decimal.Decimal, today time.Time) Summary {
	total := Total(records)
	remaining := Remaining(budget, total)

	s := Summary{
		Categories:     TotalByCategory(records),
		Count:          len(records),
		Total:          total,
		Budget:         budget,
		Remaining:      remaining,
		DaysLeft:       DaysRemaining(today),
		DailyAllowance: DailyAllowance(remaining, today),
		Overspent:      remaining.IsNegative(),
		Today:          today,
	}

	if budget.IsPositive() {
		used, _ := total.Div(budget).Float64()
		switch {
		case used > 1:
			used = 1
		case used < 0:
			used = 0
		}
		s.UsedFraction = used
	}

	return s
}
