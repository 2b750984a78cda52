package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/budget"
	"github.com/mpessoa/budgeter/internal/category"
	"github.com/mpessoa/budgeter/internal/dateutil"
	"github.com/mpessoa/budgeter/internal/http/request"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.set)
	r.Get("/summary", h.summary)
}

type categoryResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Type  category.Type `json:"type"`
	Color string        `json:"color"`
}

type budgetResponse struct {
	ID         uuid.UUID         `json:"id"`
	CategoryID uuid.UUID         `json:"category_id"`
	Category   *categoryResponse `json:"category,omitempty"`
	Amount     int64             `json:"amount"`
	Month      string            `json:"month"`
}

func toResponse(b *budget.Budget) budgetResponse {
	resp := budgetResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Month:      b.Month,
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

// SummaryResponse is the wire shape of one budget summary row. It is
// exported so the dashboard handler can reuse it for budget status.
type SummaryResponse struct {
	Category     categoryResponse `json:"category"`
	BudgetAmount int64            `json:"budget_amount"`
	Spent        int64            `json:"spent"`
	Remaining    int64            `json:"remaining"`
	Percentage   float64          `json:"percentage"`
}

func ToSummaryResponse(summaries []budget.Summary) []SummaryResponse {
	resp := make([]SummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = SummaryResponse{
			Category: categoryResponse{
				ID:    s.Category.ID,
				Name:  s.Category.Name,
				Type:  s.Category.Type,
				Color: s.Category.Color,
			},
			BudgetAmount: s.BudgetAmount,
			Spent:        s.Spent,
			Remaining:    s.Remaining,
			Percentage:   s.Percentage,
		}
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if _, err := dateutil.ParseMonth(month); err != nil {
		http.Error(w, "month parameter is required", http.StatusBadRequest)
		return
	}

	budgets, err := h.svc.ByMonth(r.Context(), month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		resp[i] = toResponse(b)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setBudgetRequest struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Amount     int64     `json:"amount" validate:"required,gt=0"`
	Month      string    `json:"month" validate:"required"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	var req setBudgetRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := dateutil.ParseMonth(req.Month); err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	b, err := h.svc.SetBudget(r.Context(), req.CategoryID, req.Amount, req.Month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if _, err := dateutil.ParseMonth(month); err != nil {
		http.Error(w, "month parameter is required", http.StatusBadRequest)
		return
	}

	summaries, err := h.svc.Summary(r.Context(), month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToSummaryResponse(summaries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
