package nutrition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// RecordSingleMealSlot stores the user's meal for (date, meal type),
// overwriting the description of an existing one. It never calls the
// estimator and never touches totals. created reports whether a new record
// was inserted.
func (s *Service) RecordSingleMealSlot(ctx context.Context, input RecordSlotInput) (created bool, err error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	date, err := domain.ParseDate("date", input.Date)
	if err != nil {
		return false, err
	}
	now := s.clock.Now().UTC()

	rec, created, err := s.meals.UpsertSlot(ctx, &domain.MealRecord{
		ID:          uuid.New(),
		UserID:      userID,
		MealType:    input.MealType,
		Description: domain.TrimDescription(input.Description),
		EatenAt:     eatenAt(date, now),
		SlotDate:    &date,
		CreatedAt:   now,
	})
	if err != nil {
		return false, fmt.Errorf("upsert meal slot: %w", err)
	}
	if created {
		s.metrics.MealRecorded(pathSlot, 1)
	}

	s.log.InfoContext(ctx, "meal slot recorded",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", rec.ID.String()),
		slog.String("date", input.Date),
		slog.String("meal_type", input.MealType.String()),
		slog.Bool("created", created),
	)

	return created, nil
}
