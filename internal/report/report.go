package report

import (
	"github.com/mpessoa/budgeter/internal/category"
)

// Spending is one category's share of expense spending inside a date range.
type Spending struct {
	Category   category.Category
	Total      int64 // Cents
	Percentage float64
}

// Trend is one month's income, expenses and savings. Months are computed
// independently; no balance carries over.
type Trend struct {
	Month    string // YYYY-MM month key
	Income   int64
	Expenses int64
	Savings  int64
}

// SpendingRow is the flat row the store produces before shares are computed.
type SpendingRow struct {
	Category category.Category
	Total    int64
}
