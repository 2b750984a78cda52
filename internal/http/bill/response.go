package bill

import (
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/bill"
	"github.com/mpessoa/budgeter/internal/category"
)

type categoryResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Type  category.Type `json:"type"`
	Color string        `json:"color"`
}

// Response is the wire shape of a recurring bill, next due date included.
// It is exported so the dashboard handler can reuse it for upcoming bills.
type Response struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Amount      int64             `json:"amount"`
	CategoryID  uuid.UUID         `json:"category_id"`
	Category    *categoryResponse `json:"category,omitempty"`
	Frequency   bill.Frequency    `json:"frequency"`
	DueDay      int               `json:"due_day"`
	IsActive    bool              `json:"is_active"`
	NextDueDate string            `json:"next_due_date"`
}

func ToResponse(b *bill.Bill) Response {
	resp := Response{
		ID:          b.ID,
		Name:        b.Name,
		Amount:      b.Amount,
		CategoryID:  b.CategoryID,
		Frequency:   b.Frequency,
		DueDay:      b.DueDay,
		IsActive:    b.IsActive,
		NextDueDate: b.NextDueDate.Format(time.DateOnly),
	}

	if b.Category != nil {
		resp.Category = &categoryResponse{
			ID:    b.Category.ID,
			Name:  b.Category.Name,
			Type:  b.Category.Type,
			Color: b.Category.Color,
		}
	}

	return resp
}

func ToResponseList(bills []*bill.Bill) []Response {
	resp := make([]Response, len(bills))
	for i, b := range bills {
		resp[i] = ToResponse(b)
	}

	return resp
}
