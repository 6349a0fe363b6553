package mealplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

// buildRequest gathers the generator context concurrently. A missing weight
// or goal falls back to the configured defaults; an empty pantry or history
// is passed through as empty.
func (s *Service) buildRequest(ctx context.Context, userID uuid.UUID, horizon domain.PlanHorizon, weekStart string) (domain.PlanRequest, error) {
	req := domain.PlanRequest{
		Horizon:   horizon,
		WeekStart: weekStart,
		WeightKg:  s.cfg.FallbackWeightKg,
		GoalType:  s.cfg.DefaultGoal,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		kg, ok, err := s.profile.CurrentWeight(gctx, userID)
		if err != nil {
			return fmt.Errorf("load weight: %w", err)
		}
		if ok {
			req.WeightKg = kg
		}
		return nil
	})

	g.Go(func() error {
		goal, ok, err := s.profile.CurrentGoalType(gctx, userID)
		if err != nil {
			return fmt.Errorf("load goal: %w", err)
		}
		if ok {
			req.GoalType = goal
		}
		return nil
	})

	g.Go(func() error {
		names, err := s.pantry.InStockNames(gctx, userID)
		if err != nil {
			return fmt.Errorf("load pantry: %w", err)
		}
		req.InStock = names
		return nil
	})

	g.Go(func() error {
		avg, err := s.macros.RecentAverages(gctx, userID, s.cfg.RecentMacroDays)
		if err != nil {
			return fmt.Errorf("load recent macros: %w", err)
		}
		req.RecentMacros = avg
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.PlanRequest{}, err
	}
	return req, nil
}

// generate calls the generator and guarantees that every failure, including
// an incomplete plan, surfaces as domain.ErrUpstreamUnavailable.
func (s *Service) generate(ctx context.Context, req domain.PlanRequest) (*domain.GeneratedPlan, error) {
	plan, err := s.generator.Generate(ctx, req)
	if err == nil && plan == nil {
		err = errors.New("empty response")
	}
	if err == nil {
		err = plan.Validate()
	}
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, domain.Upstream("meal plan generator", err)
	}
	return plan, nil
}
