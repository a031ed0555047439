// Package report computes spending totals and the remaining daily allowance.
package report

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/expense"
)

// CategoryTotals maps categories to summed amounts. Iteration follows the
// order in which each category first appeared in the input.
type CategoryTotals struct {
	order []expense.Category
	sums  map[expense.Category]decimal.Decimal
}

// Get returns the total for c and whether c had any records.
func (ct *CategoryTotals) Get(c expense.Category) (decimal.Decimal, bool) {
	v, ok := ct.sums[c]
	return v, ok
}

// Len returns the number of categories present.
func (ct *CategoryTotals) Len() int { return len(ct.order) }

// Categories returns the present categories in first-appearance order.
func (ct *CategoryTotals) Categories() []expense.Category {
	out := make([]expense.Category, len(ct.order))
	copy(out, ct.order)
	return out
}

// All yields category/total pairs in first-appearance order.
func (ct *CategoryTotals) All() iter.Seq2[expense.Category, decimal.Decimal] {
	return func(yield func(expense.Category, decimal.Decimal) bool) {
		for _, c := range ct.order {
			if !yield(c, ct.sums[c]) {
				return
			}
		}
	}
}

// TotalByCategory groups records by category and sums their amounts.
// Categories with no records are absent rather than zero.
func TotalByCategory(records []expense.Expense) *CategoryTotals {
	ct := &CategoryTotals{sums: make(map[expense.Category]decimal.Decimal)}
	for _, e := range records {
		sum, ok := ct.sums[e.Category()]
		if !ok {
			ct.order = append(ct.order, e.Category())
			sum = decimal.Zero
		}
		ct.sums[e.Category()] = sum.Add(e.Amount())
	}
	return ct
}

// Total sums every amount; zero for no records.
func Total(records []expense.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range records {
		total = total.Add(e.Amount())
	}
	return total
}

// Remaining returns budget minus spent. Overspending gives a negative value.
func Remaining(budget, spent decimal.Decimal) decimal.Decimal {
	return budget.Sub(spent)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysRemaining returns the days left in today's month, not counting today.
func DaysRemaining(today time.Time) int {
	return DaysInMonth(today.Year(), today.Month()) - today.Day()
}

// DailyAllowance spreads remaining over the days left in today's month.
// On the last day there are no days left and the allowance is zero.
func DailyAllowance(remaining decimal.Decimal, today time.Time) decimal.Decimal {
	days := DaysRemaining(today)
	if days <= 0 {
		return decimal.Zero
	}
	return remaining.Div(decimal.NewFromInt(int64(days)))
}

// Recent returns up to n records, newest first.
func Recent(records []expense.Expense, n int) []expense.Expense {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	if n > len(records) {
		n = len(records)
	}
	out := make([]expense.Expense, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		out = append(out, records[i])
	}
	return out
}
