package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mpessoa/budgeter/internal/dashboard"
	billHandler "github.com/mpessoa/budgeter/internal/http/bill"
	budgetHandler "github.com/mpessoa/budgeter/internal/http/budget"
	txHandler "github.com/mpessoa/budgeter/internal/http/transaction"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
}

type summaryResponse struct {
	TotalIncome        int64                           `json:"total_income"`
	TotalExpenses      int64                           `json:"total_expenses"`
	Savings            int64                           `json:"savings"`
	UpcomingBills      []billHandler.Response          `json:"upcoming_bills"`
	RecentTransactions []txHandler.Response            `json:"recent_transactions"`
	BudgetStatus       []budgetHandler.SummaryResponse `json:"budget_status"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		TotalIncome:        s.TotalIncome,
		TotalExpenses:      s.TotalExpenses,
		Savings:            s.Savings,
		UpcomingBills:      billHandler.ToResponseList(s.UpcomingBills),
		RecentTransactions: txHandler.ToResponseList(s.RecentTransactions),
		BudgetStatus:       budgetHandler.ToSummaryResponse(s.BudgetStatus),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
