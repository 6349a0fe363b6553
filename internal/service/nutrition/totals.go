package nutrition

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// GetTotals returns the totals of one day. A day without meals yields
// domain.ErrNotFound.
func (s *Service) GetTotals(ctx context.Context, day string) (*domain.NutritionTotals, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := resolveDay(day, s.clock.Now())
	if err != nil {
		return nil, err
	}

	totals, err := s.totals.Get(ctx, userID, d)
	if err != nil {
		return nil, fmt.Errorf("get totals: %w", err)
	}
	return totals, nil
}

// ListTotals returns the recorded days within [From, To], oldest first.
// Days without meals are absent.
func (s *Service) ListTotals(ctx context.Context, input ListTotalsInput) ([]domain.NutritionTotals, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	from, _ := domain.ParseDate("from", input.From)
	to, _ := domain.ParseDate("to", input.To)

	list, err := s.totals.ListRange(ctx, userID, from, domain.NextDay(to))
	if err != nil {
		return nil, fmt.Errorf("list totals: %w", err)
	}
	return list, nil
}

// TodaysMeals returns the meals eaten during the current UTC day.
func (s *Service) TodaysMeals(ctx context.Context) ([]domain.MealRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	today := domain.DayOf(s.clock.Now())
	meals, err := s.meals.ListEatenBetween(ctx, userID, today, domain.NextDay(today))
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// RecentAverages returns the mean of the user's n most recent totals records,
// dividing by the number of records found. Returns nil when there are none.
func (s *Service) RecentAverages(ctx context.Context, userID uuid.UUID, n int) (*domain.NutritionVector, error) {
	recent, err := s.totals.Recent(ctx, userID, n)
	if err != nil {
		return nil, fmt.Errorf("recent totals: %w", err)
	}

	vs := make([]domain.NutritionVector, len(recent))
	for i, t := range recent {
		vs[i] = t.Nutrition
	}
	return domain.AverageNutrition(vs), nil
}
