package nutrition

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// RecordMeal estimates the meal, stores it and adds the estimate to the
// day's totals. Estimation failures are absorbed as a zero vector.
//
// The meal insert and the totals increment are separate statements: if the
// increment fails the meal record stays.
func (s *Service) RecordMeal(ctx context.Context, input RecordMealInput) (*domain.NutritionTotals, error) {
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
	description := domain.TrimDescription(input.Description)

	v, estimated := s.estimate(ctx, description)

	rec := &domain.MealRecord{
		ID:          uuid.New(),
		UserID:      userID,
		MealType:    input.MealType,
		Description: description,
		EatenAt:     eatenAt(day, now),
		CreatedAt:   now,
	}
	if estimated {
		rec.Nutrition = &v
	}
	if _, err := s.meals.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}
	s.metrics.MealRecorded(pathLedger, 1)

	totals, err := s.totals.Increment(ctx, userID, day, v)
	if err != nil {
		return nil, fmt.Errorf("increment totals: %w", err)
	}

	s.log.InfoContext(ctx, "meal recorded",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", rec.ID.String()),
		slog.String("day", domain.FormatDate(day)),
		slog.String("meal_type", input.MealType.String()),
		slog.Bool("estimated", estimated),
	)

	return totals, nil
}

// resolveDay parses an optional YYYY-MM-DD day, defaulting to the UTC day of now.
func resolveDay(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return domain.DayOf(now), nil
	}
	return domain.ParseDate("day", s)
}

// eatenAt is now when day is today, otherwise noon of day so the record
// falls inside that day.
func eatenAt(day, now time.Time) time.Time {
	if day.Equal(domain.DayOf(now)) {
		return now
	}
	return day.Add(12 * time.Hour)
}
