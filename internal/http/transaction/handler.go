package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/http/request"
	"github.com/mpessoa/budgeter/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Amount      int64            `json:"amount" validate:"required,gt=0"`
	Description string           `json:"description" validate:"required"`
	CategoryID  uuid.UUID        `json:"category_id" validate:"required"`
	Date        string           `json:"date" validate:"required"`
	Type        transaction.Type `json:"type" validate:"required,oneof=income expense"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        date,
		Type:        req.Type,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

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

	if s := r.URL.Query().Get("category_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CategoryID = &id
		}
	}

	if s := r.URL.Query().Get("type"); s != "" {
		t := transaction.Type(s)
		filter.Type = &t
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTransactionRequest struct {
	Amount      *int64            `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Description *string           `json:"description,omitempty"`
	CategoryID  *uuid.UUID        `json:"category_id,omitempty"`
	Date        *string           `json:"date,omitempty"`
	Type        *transaction.Type `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.CategoryID != nil {
		tx.CategoryID = *req.CategoryID
	}

	if req.Date != nil {
		date, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		tx.Date = date
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}

	if err := h.svc.Update(r.Context(), tx); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponse(tx)); err != nil {
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
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
