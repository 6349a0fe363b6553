package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/service/pantry"
)

type pantryService interface {
	AddItem(ctx context.Context, input pantry.AddItemInput) (*domain.PantryItem, error)
	SetStatus(ctx context.Context, input pantry.SetStatusInput) (*domain.PantryItem, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	ListItems(ctx context.Context, input pantry.ListItemsInput) ([]domain.PantryItem, error)
}

// PantryHandler serves the pantry and shopping list.
type PantryHandler struct {
	svc pantryService
	log *slog.Logger
}

// NewPantryHandler creates a PantryHandler.
func NewPantryHandler(svc pantryService, logger *slog.Logger) *PantryHandler {
	return &PantryHandler{svc: svc, log: logger.With("handler", "pantry")}
}

type addItemRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type pantryItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/pantry?status=. Without a status it lists in-stock
// items; status=all lists both.
func (h *PantryHandler) List(w http.ResponseWriter, r *http.Request) {
	var input pantry.ListItemsInput
	switch s := r.URL.Query().Get("status"); s {
	case "all":
	case "":
		st := domain.PantryStatusInStock
		input.Status = &st
	default:
		st := domain.PantryStatus(s)
		input.Status = &st
	}

	items, err := h.svc.ListItems(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]pantryItemResponse, len(items))
	for i, it := range items {
		resp[i] = toPantryItemResponse(it)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": resp})
}

// Add handles POST /api/pantry.
func (h *PantryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.AddItem(r.Context(), pantry.AddItemInput{
		Name:   req.Name,
		Status: domain.PantryStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPantryItemResponse(*item))
}

// SetStatus handles PUT /api/pantry/{id}/status.
func (h *PantryHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.SetStatus(r.Context(), pantry.SetStatusInput{
		ItemID: itemID,
		Status: domain.PantryStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPantryItemResponse(*item))
}

// Remove handles DELETE /api/pantry/{id}.
func (h *PantryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	if err := h.svc.RemoveItem(r.Context(), itemID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPantryItemResponse(it domain.PantryItem) pantryItemResponse {
	return pantryItemResponse{
		ID:        it.ID.String(),
		Name:      it.Name,
		Status:    it.Status.String(),
		CreatedAt: it.CreatedAt,
	}
}
