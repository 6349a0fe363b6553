package mealplan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// GetPlan returns the live plan for the week starting at weekStart
// (YYYY-MM-DD). Missing and expired plans both return domain.ErrNotFound.
func (s *Service) GetPlan(ctx context.Context, weekStart string) (*domain.MealPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := domain.ParseDate("week_start", weekStart); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetLive(ctx, userID, weekStart, s.notBefore())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.PlanCache(false)
		}
		return nil, fmt.Errorf("get meal plan: %w", err)
	}

	s.metrics.PlanCache(true)
	return plan, nil
}

// GeneratePlan produces a fresh plan for the week and stores it, replacing
// any previous plan for that week and restarting its lifetime. The pantry is
// read for context only; the shopping list is not written back.
func (s *Service) GeneratePlan(ctx context.Context, weekStart string) (*domain.MealPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := domain.ParseDate("week_start", weekStart); err != nil {
		return nil, err
	}

	req, err := s.buildRequest(ctx, userID, domain.PlanHorizonWeek, weekStart)
	if err != nil {
		return nil, fmt.Errorf("generate meal plan: %w", err)
	}

	generated, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.Upsert(ctx, &domain.MealPlan{
		ID:        uuid.New(),
		UserID:    userID,
		WeekStart: weekStart,
		Meals:     generated.PlannedMeals(weekStart),
		CreatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("store meal plan: %w", err)
	}

	s.log.InfoContext(ctx, "meal plan generated",
		slog.String("user_id", userID.String()),
		slog.String("plan_id", plan.ID.String()),
		slog.String("week_start", weekStart),
		slog.Int("shopping_list", len(generated.ShoppingList)),
	)

	return plan, nil
}

// UpdatePlan replaces the meals of a live plan owned by the caller. The
// plan's lifetime is not extended.
func (s *Service) UpdatePlan(ctx context.Context, input UpdatePlanInput) (*domain.MealPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.plans.UpdateMeals(ctx, userID, input.PlanID, input.Meals, s.notBefore())
	if err != nil {
		return nil, fmt.Errorf("update meal plan: %w", err)
	}

	s.log.InfoContext(ctx, "meal plan updated",
		slog.String("user_id", userID.String()),
		slog.String("plan_id", plan.ID.String()),
		slog.Int("meals", len(plan.Meals)),
	)

	return plan, nil
}
