package expense

import (
	"strings"
)

// Category is one of the fixed spending buckets. The zero value is invalid.
type Category int

const (
	Food Category = iota + 1
	Home
	Work
	Fun
	Misc
)

type categoryInfo struct {
	name  string // stored value
	emoji string
}

var categoryTable = map[Category]categoryInfo{
	Food: {"Food", "🍔"},
	Home: {"Home", "🏠"},
	Work: {"Work", "💼"},
	Fun:  {"Fun", "🎉"},
	Misc: {"Misc", "✨"},
}

// Categories returns every category in menu order.
func Categories() []Category {
	return []Category{Food, Home, Work, Fun, Misc}
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// String returns the stored value, e.g. "Food".
func (c Category) String() string {
	if info, ok := categoryTable[c]; ok {
		return info.name
	}
	return "Unknown"
}

// Label returns the decorated display label, e.g. "🍔 Food".
func (c Category) Label() string {
	if info, ok := categoryTable[c]; ok {
		return info.emoji + " " + info.name
	}
	return "Unknown"
}

// ParseCategory resolves a stored value or a decorated label to a Category.
// Stored values match case-insensitively, so "food", "Food" and "🍔 Food"
// all resolve to Food.
func ParseCategory(s string) (Category, error) {
	word := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(word, categoryTable[c].name) || word == c.Label() {
			return c, nil
		}
	}
	return 0, &ValidationError{Field: "category", Value: s, Reason: "not one of " + categoryList()}
}

func categoryList() string {
	names := make([]string, 0, len(categoryTable))
	for _, c := range Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
