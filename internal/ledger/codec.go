package ledger

import (
	"strings"

	"github.com/theirongolddev/spent/internal/expense"
)

// FormatLine renders e as a log line "name,amount,category" without the
// trailing newline.
func FormatLine(e expense.Expense) string {
	return e.Name() + "," + e.Amount().String() + "," + e.Category().String()
}

// ParseLine decodes a single log line. The returned reason is empty on success
// and describes the defect otherwise.
//
// Only the amount and category fields are trimmed; the name is kept verbatim so
// a record survives a write/read cycle unchanged.
func ParseLine(line string) (expense.Expense, string) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return expense.Expense{}, "expected 3 comma-separated fields"
	}

	amount, err := expense.ParseAmount(fields[1])
	if err != nil {
		return expense.Expense{}, err.Error()
	}
	category, err := expense.ParseCategory(fields[2])
	if err != nil {
		return expense.Expense{}, err.Error()
	}

	e, err := expense.New(fields[0], category, amount)
	if err != nil {
		return expense.Expense{}, err.Error()
	}
	return e, ""
}
