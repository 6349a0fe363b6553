package mealplan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// Suggestion is a single-day meal suggestion and the pantry items its
// shopping list was written to.
type Suggestion struct {
	Date         string
	GoalType     string
	WeightKg     float64
	Meals        []domain.PlannedMeal
	ShoppingList []domain.PantryItem
}

// SuggestMeals asks the generator for today's meals without storing a plan.
// Every shopping-list name is upserted into the pantry as to_buy. All names
// are attempted; failures are joined into the returned error. The upserts
// are idempotent, so retrying is safe.
func (s *Service) SuggestMeals(ctx context.Context) (*Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	today := domain.FormatDate(s.clock.Now())

	req, err := s.buildRequest(ctx, userID, domain.PlanHorizonDay, today)
	if err != nil {
		return nil, fmt.Errorf("suggest meals: %w", err)
	}

	generated, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	out := &Suggestion{
		Date:     today,
		GoalType: req.GoalType,
		WeightKg: req.WeightKg,
		Meals:    generated.PlannedMeals(today),
	}

	var errs []error
	for _, name := range generated.ShoppingList {
		item, err := s.pantry.UpsertFromSuggestion(ctx, userID, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("shopping list item %q: %w", name, err))
			continue
		}
		out.ShoppingList = append(out.ShoppingList, *item)
	}
	if err := errors.Join(errs...); err != nil {
		s.log.WarnContext(ctx, "shopping list partially applied",
			slog.String("user_id", userID.String()),
			slog.Int("applied", len(out.ShoppingList)),
			slog.Int("failed", len(errs)),
		)
		return nil, fmt.Errorf("apply shopping list: %w", err)
	}

	s.log.InfoContext(ctx, "meals suggested",
		slog.String("user_id", userID.String()),
		slog.Int("shopping_list", len(out.ShoppingList)),
	)

	return out, nil
}
