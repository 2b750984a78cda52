package category

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/category"
	"github.com/mpessoa/budgeter/internal/http/request"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type categoryResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Type  category.Type `json:"type"`
	Color string        `json:"color"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Type:  c.Type,
		Color: c.Color,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createCategoryRequest struct {
	Name  string        `json:"name" validate:"required"`
	Type  category.Type `json:"type" validate:"required,oneof=income expense"`
	Color string        `json:"color"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateParams{
		Name:  req.Name,
		Type:  req.Type,
		Color: req.Color,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCategoryRequest struct {
	Name  *string        `json:"name,omitempty"`
	Type  *category.Type `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Color *string        `json:"color,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCategoryRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Type != nil {
		c.Type = *req.Type
	}

	if req.Color != nil {
		c.Color = *req.Color
	}

	if err := h.svc.Update(r.Context(), c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
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
		if errors.Is(err, category.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
