package bill

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/bill"
	"github.com/mpessoa/budgeter/internal/http/payment"
	"github.com/mpessoa/budgeter/internal/http/request"
)

const defaultUpcomingDays = 7

type Handler struct {
	svc *bill.Service
}

func NewHandler(svc *bill.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/upcoming", h.upcoming)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/pay", h.pay)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	bills, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponseList(bills)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createBillRequest struct {
	Name       string         `json:"name" validate:"required"`
	Amount     int64          `json:"amount" validate:"required,gt=0"`
	CategoryID uuid.UUID      `json:"category_id" validate:"required"`
	Frequency  bill.Frequency `json:"frequency" validate:"required,oneof=monthly quarterly yearly"`
	DueDay     int            `json:"due_day" validate:"required,min=1,max=31"`
	IsActive   *bool          `json:"is_active,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createBillRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Bills default to active unless explicitly disabled.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	b, err := h.svc.Create(r.Context(), bill.CreateParams{
		Name:       req.Name,
		Amount:     req.Amount,
		CategoryID: req.CategoryID,
		Frequency:  req.Frequency,
		DueDay:     req.DueDay,
		IsActive:   isActive,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upcoming(w http.ResponseWriter, r *http.Request) {
	days := defaultUpcomingDays

	if s := r.URL.Query().Get("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}

		days = n
	}

	bills, err := h.svc.Upcoming(r.Context(), days)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponseList(bills)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateBillRequest struct {
	Name       *string         `json:"name,omitempty"`
	Amount     *int64          `json:"amount,omitempty" validate:"omitempty,gt=0"`
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	Frequency  *bill.Frequency `json:"frequency,omitempty" validate:"omitempty,oneof=monthly quarterly yearly"`
	DueDay     *int            `json:"due_day,omitempty" validate:"omitempty,min=1,max=31"`
	IsActive   *bool           `json:"is_active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateBillRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, bill.ErrNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		b.Name = *req.Name
	}

	if req.Amount != nil {
		b.Amount = *req.Amount
	}

	if req.CategoryID != nil {
		b.CategoryID = *req.CategoryID
	}

	if req.Frequency != nil {
		b.Frequency = *req.Frequency
	}

	if req.DueDay != nil {
		b.DueDay = *req.DueDay
	}

	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := h.svc.Update(r.Context(), b); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, bill.ErrNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type payBillRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	PaidDate string `json:"paid_date" validate:"required"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req payBillRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	paidDate, err := time.Parse(time.DateOnly, req.PaidDate)
	if err != nil {
		http.Error(w, "invalid paid_date", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Pay(r.Context(), id, req.Amount, paidDate)
	if err != nil {
		if errors.Is(err, bill.ErrNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(payment.ToResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
