package pantry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

// UpsertFromSuggestion puts name on the user's shopping list. Unlike AddItem
// it matches on the normalized name regardless of status: an existing item
// is flipped to to_buy with a fresh created_at and the suggested display
// name. Duplicate rows left by a status split are collapsed into one.
//
// Concurrent calls for the same name converge on a single row: existing rows
// are locked with SELECT ... FOR UPDATE, and the insert path is an upsert.
func (s *Service) UpsertFromSuggestion(ctx context.Context, userID uuid.UUID, name string) (*domain.PantryItem, error) {
	if errs := validateName(name); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	display := strings.TrimSpace(name)
	normalized := domain.NormalizeName(name)

	var item *domain.PantryItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now().UTC()

		existing, err := s.items.LockByName(txCtx, userID, normalized)
		if err != nil {
			return fmt.Errorf("lock pantry items: %w", err)
		}

		if len(existing) == 0 {
			item, err = s.items.UpsertToBuy(txCtx, &domain.PantryItem{
				ID:             uuid.New(),
				UserID:         userID,
				Name:           display,
				NormalizedName: normalized,
				Status:         domain.PantryStatusToBuy,
				CreatedAt:      now,
			})
			if err != nil {
				return fmt.Errorf("insert suggested item: %w", err)
			}
			return nil
		}

		keep, drop := pickSurvivor(existing)
		if len(drop) > 0 {
			if _, err := s.items.DeleteByIDs(txCtx, userID, drop); err != nil {
				return fmt.Errorf("collapse duplicates: %w", err)
			}
		}

		item, err = s.items.MarkToBuy(txCtx, userID, keep.ID, display, now)
		if err != nil {
			return fmt.Errorf("mark to buy: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PantryUpserts(1)
	s.log.DebugContext(ctx, "pantry suggestion applied",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("name", normalized),
	)

	return item, nil
}

// pickSurvivor keeps the to_buy row when there is one, otherwise the oldest
// row, and returns the ids of the others.
func pickSurvivor(items []domain.PantryItem) (keep domain.PantryItem, drop []uuid.UUID) {
	idx := 0
	for i, it := range items {
		if it.Status == domain.PantryStatusToBuy {
			idx = i
			break
		}
	}
	keep = items[idx]
	for i, it := range items {
		if i != idx {
			drop = append(drop, it.ID)
		}
	}
	return keep, drop
}
