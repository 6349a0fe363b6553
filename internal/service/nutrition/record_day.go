package nutrition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// maxParallelEstimates bounds concurrent estimator calls of one RecordDay.
const maxParallelEstimates = 4

// RecordDayResult is the outcome of RecordDay.
type RecordDayResult struct {
	Meals  []domain.MealRecord
	Totals *domain.NutritionTotals
}

// RecordDay records several meals of one day at once. Every meal is
// estimated, stored as its own record, and the summed vector is applied to
// the day's totals in a single increment.
func (s *Service) RecordDay(ctx context.Context, input RecordDayInput) (*RecordDayResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	day, err := resolveDay(input.Day, now)
	if err != nil {
		return nil, err
	}

	var records []*domain.MealRecord
	for _, mt := range domain.MealTypes() {
		desc := domain.TrimDescription(input.Meals[mt])
		if desc == "" {
			continue
		}
		records = append(records, &domain.MealRecord{
			ID:          uuid.New(),
			UserID:      userID,
			MealType:    mt,
			Description: desc,
			EatenAt:     eatenAt(day, now),
			CreatedAt:   now,
		})
	}

	// estimate never fails, so the group only bounds concurrency.
	vectors := make([]domain.NutritionVector, len(records))
	var g errgroup.Group
	g.SetLimit(maxParallelEstimates)
	for i, rec := range records {
		g.Go(func() error {
			v, estimated := s.estimate(ctx, rec.Description)
			vectors[i] = v
			if estimated {
				rec.Nutrition = &v
			}
			return nil
		})
	}
	_ = g.Wait()

	var sum domain.NutritionVector
	stored := make([]domain.MealRecord, 0, len(records))
	for i, rec := range records {
		out, err := s.meals.Insert(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("insert %s: %w", rec.MealType, err)
		}
		stored = append(stored, *out)
		sum = sum.Add(vectors[i])
	}
	s.metrics.MealRecorded(pathDay, len(stored))

	totals, err := s.totals.Increment(ctx, userID, day, sum)
	if err != nil {
		return nil, fmt.Errorf("increment totals: %w", err)
	}

	s.log.InfoContext(ctx, "day recorded",
		slog.String("user_id", userID.String()),
		slog.String("day", domain.FormatDate(day)),
		slog.Int("meals", len(stored)),
	)

	return &RecordDayResult{Meals: stored, Totals: totals}, nil
}
