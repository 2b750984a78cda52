package bill

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/category"
)

var (
	ErrNotFound        = errors.New("bill not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// Frequency is how often a recurring bill comes due.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Bill is a template for a periodically due obligation, not an individual payment.
type Bill struct {
	ID          uuid.UUID
	Name        string
	Amount      int64 // Amount in cents
	CategoryID  uuid.UUID
	Category    *category.Category // Loaded via JOIN
	Frequency   Frequency
	DueDay      int // Day of month 1-31, independent of month length
	IsActive    bool
	NextDueDate time.Time // Derived at read time, never stored
}

// PaymentStatus is the lifecycle state of a bill payment.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Payment records money paid against a bill. A payment may exist without a
// parent bill (RecurringBillID nil).
type Payment struct {
	ID              uuid.UUID
	RecurringBillID *uuid.UUID
	Bill            *Bill // Loaded via JOIN, without category or due date
	Amount          int64
	PaidDate        time.Time
	DueDate         time.Time
	Status          PaymentStatus
}
