package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/bill"
)

type billSummaryResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Amount    int64          `json:"amount"`
	Frequency bill.Frequency `json:"frequency"`
	DueDay    int            `json:"due_day"`
}

// Response is the wire shape of a bill payment. It is exported so the bill
// and report handlers can reuse it.
type Response struct {
	ID              uuid.UUID            `json:"id"`
	RecurringBillID *uuid.UUID           `json:"recurring_bill_id"`
	Amount          int64                `json:"amount"`
	PaidDate        string               `json:"paid_date"`
	DueDate         string               `json:"due_date"`
	Status          bill.PaymentStatus   `json:"status"`
	RecurringBill   *billSummaryResponse `json:"recurring_bill,omitempty"`
}

func ToResponse(p *bill.Payment) Response {
	resp := Response{
		ID:              p.ID,
		RecurringBillID: p.RecurringBillID,
		Amount:          p.Amount,
		PaidDate:        p.PaidDate.Format(time.DateOnly),
		DueDate:         p.DueDate.Format(time.DateOnly),
		Status:          p.Status,
	}

	if p.Bill != nil {
		resp.RecurringBill = &billSummaryResponse{
			ID:        p.Bill.ID,
			Name:      p.Bill.Name,
			Amount:    p.Bill.Amount,
			Frequency: p.Bill.Frequency,
			DueDay:    p.Bill.DueDay,
		}
	}

	return resp
}

func ToResponseList(payments []*bill.Payment) []Response {
	resp := make([]Response, len(payments))
	for i, p := range payments {
		resp[i] = ToResponse(p)
	}

	return resp
}
