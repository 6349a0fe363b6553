package pantry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// AddItem adds an item to the user's pantry. Returns domain.ErrConflict when
// an item with the same normalized name already exists in the same status.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.PantryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.PantryStatusInStock
	}

	item, err := s.items.Insert(ctx, &domain.PantryItem{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           strings.TrimSpace(input.Name),
		NormalizedName: domain.NormalizeName(input.Name),
		Status:         status,
		CreatedAt:      s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("add pantry item: %w", asConflict(err))
	}

	s.log.InfoContext(ctx, "pantry item added",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("status", status.String()),
	)

	return item, nil
}

// SetStatus moves an item to another list. Returns domain.ErrNotFound when the
// user owns no such item and domain.ErrConflict when the target list already
// holds the same name.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) (*domain.PantryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.UpdateStatus(ctx, userID, input.ItemID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("set pantry status: %w", asConflict(err))
	}

	s.log.InfoContext(ctx, "pantry item status changed",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("status", item.Status.String()),
	)

	return item, nil
}

// RemoveItem deletes an item. Returns domain.ErrNotFound when absent.
func (s *Service) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}

	if err := s.items.Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("remove pantry item: %w", err)
	}

	s.log.InfoContext(ctx, "pantry item removed",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)
	return nil
}

// ListItems returns the user's items ordered by creation time.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]domain.PantryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, userID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}
	return items, nil
}

// InStockNames returns the display names of the user's in-stock items.
func (s *Service) InStockNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	names, err := s.items.InStockNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("in-stock names: %w", err)
	}
	return names, nil
}
