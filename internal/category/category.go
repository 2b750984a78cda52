package category

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("category not found")

// Type classifies a category as carrying income or expenses.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// DefaultColor is applied when a category is created without a display color.
const DefaultColor = "#2196f3"

// Category is a named, typed, colored tag used to classify transactions and bills.
type Category struct {
	ID    uuid.UUID
	Name  string
	Type  Type
	Color string
}
