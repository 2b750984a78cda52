package budget

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/category"
)

var ErrNotFound = errors.New("budget not found")

// Budget is a spending target for one category in one month. At most one
// budget exists per (category, month); writing the same pair again replaces
// the amount.
type Budget struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Category   *category.Category // Loaded via JOIN
	Amount     int64              // Amount in cents
	Month      string             // YYYY-MM month key
}

// Summary is the derived, never persisted view of a budget against actual
// spend for one category and month.
type Summary struct {
	Category     category.Category
	BudgetAmount int64
	Spent        int64
	Remaining    int64
	Percentage   float64
}

// SummaryRow is the flat row the store produces before derived fields are
// computed.
type SummaryRow struct {
	Category     category.Category
	BudgetAmount int64
	Spent        int64
}
