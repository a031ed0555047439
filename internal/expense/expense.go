// Package expense defines the expense record and its category set.
package expense

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalid is matched by every ValidationError.
var ErrInvalid = errors.New("invalid expense")

// Limits on accepted values. They keep every record to a short log line.
const (
	MaxNameLength   = 256 // bytes
	MaxAmountDigits = 15  // digits before the decimal point
	MaxAmountScale  = 8   // digits after the decimal point
)

var maxAmount = decimal.New(1, MaxAmountDigits)

// ValidationError describes a rejected field value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalid) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Expense is one logged spending event. Values are immutable once built.
type Expense struct {
	name     string
	category Category
	amount   decimal.Decimal
}

// New validates and builds an Expense. The name must not contain a comma
// or a line break because the log stores one comma-separated record per line.
func New(name string, category Category, amount decimal.Decimal) (Expense, error) {
	if err := ValidateName(name); err != nil {
		return Expense{}, err
	}
	if !category.Valid() {
		return Expense{}, &ValidationError{Field: "category", Value: category.String(), Reason: "not one of " + categoryList()}
	}
	if err := ValidateAmount("amount", amount); err != nil {
		return Expense{}, err
	}
	if amount.IsZero() {
		amount = decimal.Zero
	}
	return Expense{name: name, category: category, amount: amount}, nil
}

// ValidateName rejects names the log format cannot hold.
func ValidateName(name string) error {
	if len(name) > MaxNameLength {
		return &ValidationError{Field: "name", Value: name[:32] + "...", Reason: fmt.Sprintf("longer than %d bytes", MaxNameLength)}
	}
	if strings.ContainsAny(name, ",\r\n") {
		return &ValidationError{Field: "name", Value: name, Reason: "must not contain commas or line breaks"}
	}
	return nil
}

// ValidateAmount checks that d is non-negative, below 10^MaxAmountDigits and
// has at most MaxAmountScale decimal places. field names the value in the
// error. The exponent is checked before any comparison, so huge exponents
// are rejected without expanding the number.
func ValidateAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return &ValidationError{Field: field, Value: d.String(), Reason: "must not be negative"}
	}
	if d.IsZero() {
		return nil
	}
	exp := d.Exponent()
	if exp > MaxAmountDigits || (exp >= -MaxAmountScale && !d.LessThan(maxAmount)) {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be less than 1e%d", MaxAmountDigits)}
	}
	if exp < -MaxAmountScale {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("more than %d decimal places", MaxAmountScale)}
	}
	return nil
}

// ParseAmount parses a non-negative decimal amount such as "4.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "must not be empty"}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Reason: "not a number"}
	}
	if err := ValidateAmount("amount", d); err != nil {
		return decimal.Zero, err
	}
	if d.IsZero() {
		return decimal.Zero, nil // drops exponents like 0e999999
	}
	return d, nil
}

func (e Expense) Name() string { return e.name }

func (e Expense) Category() Category { return e.category }

func (e Expense) Amount() decimal.Decimal { return e.amount }

// Equal reports whether both records carry the same name, category and amount.
// Amounts compare by value, so 4.5 equals 4.50.
func (e Expense) Equal(o Expense) bool {
	return e.name == o.name && e.category == o.category && e.amount.Equal(o.amount)
}

func (e Expense) String() string {
	return fmt.Sprintf("<Expense: %s, %s, $%s>", e.name, e.category, e.amount.StringFixed(2))
}
