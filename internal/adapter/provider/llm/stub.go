package llm

import (
	"context"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

// Stub is an offline estimator and generator for local development and
// end-to-end tests. Estimates are always zero and the plan is fixed.
type Stub struct{}

// NewStub creates a Stub.
func NewStub() *Stub { return &Stub{} }

// Estimate always returns the zero vector.
func (s *Stub) Estimate(ctx context.Context, description string) (domain.NutritionVector, error) {
	return domain.NutritionVector{}, nil
}

// Generate returns a fixed plan. Ingredients already in stock are left off
// the shopping list.
func (s *Stub) Generate(ctx context.Context, req domain.PlanRequest) (*domain.GeneratedPlan, error) {
	inStock := make(map[string]struct{}, len(req.InStock))
	for _, n := range req.InStock {
		inStock[domain.NormalizeName(n)] = struct{}{}
	}

	var shopping []string
	for _, n := range []string{"eggs", "spinach", "quinoa", "black beans", "avocado", "chicken breast", "sweet potato", "broccoli"} {
		if _, ok := inStock[n]; !ok {
			shopping = append(shopping, n)
		}
	}

	return &domain.GeneratedPlan{
		Breakfast:    "Scrambled eggs with spinach",
		Lunch:        "Quinoa bowl with black beans and avocado",
		Dinner:       "Baked chicken with sweet potato and broccoli",
		ShoppingList: shopping,
	}, nil
}
