package mealplan

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

// MaxPlanMeals caps the number of meals in an edited plan.
const MaxPlanMeals = 7 * 4

// UpdatePlanInput holds the parameters for editing a plan's meals.
type UpdatePlanInput struct {
	PlanID uuid.UUID
	Meals  []domain.PlannedMeal
}

// Validate checks all fields and collects all errors.
func (i UpdatePlanInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	// An explicit empty list clears the plan; a missing one is rejected.
	if i.Meals == nil {
		errs = append(errs, domain.FieldError{Field: "meals", Message: "required"})
	} else if len(i.Meals) > MaxPlanMeals {
		errs = append(errs, domain.FieldError{Field: "meals", Message: "too many meals"})
	}
	errs = append(errs, domain.FieldErrorsOf(domain.ValidatePlannedMeals(i.Meals))...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
