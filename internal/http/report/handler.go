package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/bill"
	"github.com/mpessoa/budgeter/internal/category"
	"github.com/mpessoa/budgeter/internal/http/payment"
	"github.com/mpessoa/budgeter/internal/report"
)

const defaultTrendMonths = 6

type Handler struct {
	svc      *report.Service
	payments *bill.Service
}

func NewHandler(svc *report.Service, payments *bill.Service) *Handler {
	return &Handler{svc: svc, payments: payments}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/spending", h.spending)
	r.Get("/trends", h.trends)
	r.Get("/bills", h.billPayments)
}

type categoryResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Type  category.Type `json:"type"`
	Color string        `json:"color"`
}

type spendingResponse struct {
	Category   categoryResponse `json:"category"`
	Total      int64            `json:"total"`
	Percentage float64          `json:"percentage"`
}

type trendResponse struct {
	Month    string `json:"month"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Savings  int64  `json:"savings"`
}

func (h *Handler) spending(w http.ResponseWriter, r *http.Request) {
	startDate, err := time.Parse(time.DateOnly, r.URL.Query().Get("start_date"))
	if err != nil {
		http.Error(w, "start_date and end_date are required", http.StatusBadRequest)
		return
	}

	endDate, err := time.Parse(time.DateOnly, r.URL.Query().Get("end_date"))
	if err != nil {
		http.Error(w, "start_date and end_date are required", http.StatusBadRequest)
		return
	}

	reports, err := h.svc.SpendingByCategory(r.Context(), startDate, endDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]spendingResponse, len(reports))
	for i, rep := range reports {
		resp[i] = spendingResponse{
			Category: categoryResponse{
				ID:    rep.Category.ID,
				Name:  rep.Category.Name,
				Type:  rep.Category.Type,
				Color: rep.Category.Color,
			},
			Total:      rep.Total,
			Percentage: rep.Percentage,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) trends(w http.ResponseWriter, r *http.Request) {
	months := defaultTrendMonths

	if s := r.URL.Query().Get("months"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "invalid months", http.StatusBadRequest)
			return
		}

		months = n
	}

	trends, err := h.svc.MonthlyTrends(r.Context(), months)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]trendResponse, len(trends))
	for i, t := range trends {
		resp[i] = trendResponse{
			Month:    t.Month,
			Income:   t.Income,
			Expenses: t.Expenses,
			Savings:  t.Savings,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) billPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.Payments(r.Context(), bill.PaymentFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payment.ToResponseList(payments)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
