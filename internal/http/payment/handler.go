package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/bill"
	"github.com/mpessoa/budgeter/internal/http/request"
)

type Handler struct {
	svc *bill.Service
}

func NewHandler(svc *bill.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := bill.PaymentFilter{}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	payments, err := h.svc.Payments(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponseList(payments)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createPaymentRequest struct {
	RecurringBillID *uuid.UUID         `json:"recurring_bill_id,omitempty"`
	Amount          int64              `json:"amount" validate:"required,gt=0"`
	PaidDate        string             `json:"paid_date" validate:"required"`
	DueDate         string             `json:"due_date" validate:"required"`
	Status          bill.PaymentStatus `json:"status" validate:"omitempty,oneof=paid pending overdue"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	paidDate, err := time.Parse(time.DateOnly, req.PaidDate)
	if err != nil {
		http.Error(w, "invalid paid_date", http.StatusBadRequest)
		return
	}

	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		http.Error(w, "invalid due_date", http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreatePayment(r.Context(), bill.PaymentParams{
		RecurringBillID: req.RecurringBillID,
		Amount:          req.Amount,
		PaidDate:        paidDate,
		DueDate:         dueDate,
		Status:          req.Status,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updatePaymentRequest struct {
	RecurringBillID *uuid.UUID          `json:"recurring_bill_id,omitempty"`
	Amount          *int64              `json:"amount,omitempty" validate:"omitempty,gt=0"`
	PaidDate        *string             `json:"paid_date,omitempty"`
	DueDate         *string             `json:"due_date,omitempty"`
	Status          *bill.PaymentStatus `json:"status,omitempty" validate:"omitempty,oneof=paid pending overdue"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updatePaymentRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetPayment(r.Context(), id)
	if err != nil {
		if errors.Is(err, bill.ErrPaymentNotFound) {
			http.Error(w, "payment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.RecurringBillID != nil {
		p.RecurringBillID = req.RecurringBillID
	}

	if req.Amount != nil {
		p.Amount = *req.Amount
	}

	if req.PaidDate != nil {
		paidDate, err := time.Parse(time.DateOnly, *req.PaidDate)
		if err != nil {
			http.Error(w, "invalid paid_date", http.StatusBadRequest)
			return
		}

		p.PaidDate = paidDate
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			http.Error(w, "invalid due_date", http.StatusBadRequest)
			return
		}

		p.DueDate = dueDate
	}

	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := h.svc.UpdatePayment(r.Context(), p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
