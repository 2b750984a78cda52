package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/category"
)

var ErrNotFound = errors.New("transaction not found")

// Type represents the type of transaction (income or expense).
// It is stored on the transaction itself and may diverge from the
// referenced category's type; the two are never reconciled.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a single income or expense event in the ledger.
type Transaction struct {
	ID          uuid.UUID
	Amount      int64 // Amount in cents
	Description string
	CategoryID  uuid.UUID
	Category    *category.Category // Loaded via JOIN
	Date        time.Time          // Calendar date, no time component
	Type        Type
	CreatedAt   time.Time
}
