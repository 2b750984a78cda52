package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/category"
	"github.com/mpessoa/budgeter/internal/transaction"
)

type categoryResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Type  category.Type `json:"type"`
	Color string        `json:"color"`
}

// Response is the wire shape of a transaction. It is exported so the
// dashboard handler can reuse it for recent transactions.
type Response struct {
	ID          uuid.UUID         `json:"id"`
	Amount      int64             `json:"amount"`
	Description string            `json:"description"`
	CategoryID  uuid.UUID         `json:"category_id"`
	Category    *categoryResponse `json:"category,omitempty"`
	Date        string            `json:"date"`
	Type        transaction.Type  `json:"type"`
	CreatedAt   time.Time         `json:"created_at"`
}

func ToResponse(tx *transaction.Transaction) Response {
	resp := Response{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Description: tx.Description,
		CategoryID:  tx.CategoryID,
		Date:        tx.Date.Format(time.DateOnly),
		Type:        tx.Type,
		CreatedAt:   tx.CreatedAt,
	}

	if tx.Category != nil {
		resp.Category = &categoryResponse{
			ID:    tx.Category.ID,
			Name:  tx.Category.Name,
			Type:  tx.Category.Type,
			Color: tx.Category.Color,
		}
	}

	return resp
}

func ToResponseList(txs []*transaction.Transaction) []Response {
	resp := make([]Response, len(txs))
	for i, tx := range txs {
		resp[i] = ToResponse(tx)
	}

	return resp
}
