// Package prompt collects expenses and the budget figure through huh forms.
package prompt

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/expense"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("input aborted")

// ExpenseValues backs the expense form. Fields may be pre-filled.
type ExpenseValues struct {
	Name     string
	Amount   string
	Category expense.Category
}

// Expense validates the collected values into a record.
func (v *ExpenseValues) Expense() (expense.Expense, error) {
	amount, err := expense.ParseAmount(v.Amount)
	if err != nil {
		return expense.Expense{}, err
	}
	return expense.New(v.Name, v.Category, amount)
}

// BudgetValues backs the budget form.
type BudgetValues struct {
	Amount string
}

// Value parses the collected budget figure.
func (v *BudgetValues) Value() (decimal.Decimal, error) {
	return expense.ParseAmount(v.Amount)
}

// NewExpenseForm builds the three-field expense form bound to v. Invalid
// input is rejected field by field, so a completed form always yields a
// valid Expense.
func NewExpenseForm(v *ExpenseValues) *huh.Form {
	if !v.Category.Valid() {
		v.Category = expense.Food
	}

	options := make([]huh.Option[expense.Category], 0, len(expense.Categories()))
	for _, c := range expense.Categories() {
		options = append(options, huh.NewOption(c.Label(), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Expense name").
				Value(&v.Name).
				Validate(expense.ValidateName),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&v.Amount).
				Validate(validateAmount),
			huh.NewSelect[expense.Category]().
				Title("Category").
				Options(options...).
				Value(&v.Category),
		),
	)
}

// NewBudgetForm builds a single-field form for the budget figure.
func NewBudgetForm(label string, v *BudgetValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter your " + label).
				Placeholder("2000.00").
				Value(&v.Amount).
				Validate(validateAmount),
		),
	)
}

func validateAmount(s string) error {
	_, err := expense.ParseAmount(s)
	return err
}

// Interactive reports whether stdin is a terminal.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Expense runs the expense form. Without a terminal it falls back to
// line-based prompts, which also accept piped input.
func Expense(ctx context.Context, v *ExpenseValues) (expense.Expense, error) {
	if err := run(ctx, NewExpenseForm(v)); err != nil {
		return expense.Expense{}, err
	}
	return v.Expense()
}

// Budget asks for the budget figure.
func Budget(ctx context.Context, label string) (decimal.Decimal, error) {
	var v BudgetValues
	if err := run(ctx, NewBudgetForm(label, &v)); err != nil {
		return decimal.Zero, err
	}
	return v.Value()
}

func run(ctx context.Context, form *huh.Form) error {
	err := form.WithAccessible(!Interactive()).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
