package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPlanTTL is how long a stored meal plan stays live.
const DefaultPlanTTL = 24 * time.Hour

// PlannedMeal is one entry of a meal plan. It is stored as JSON inside the plan row.
type PlannedMeal struct {
	Date     string           `json:"date"`
	MealType MealType         `json:"meal_type"`
	Name     string           `json:"name"`
	Macros   *NutritionVector `json:"macros,omitempty"`
}

// Validate checks a single planned meal; field names are prefixed with prefix.
func (m PlannedMeal) Validate(prefix string) []FieldError {
	var errs []FieldError
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		errs = append(errs, FieldError{Field: prefix + ".date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !m.MealType.IsValid() {
		errs = append(errs, FieldError{Field: prefix + ".meal_type", Message: "invalid value"})
	}
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, FieldError{Field: prefix + ".name", Message: "required"})
	}
	if m.Macros != nil {
		if err := m.Macros.Validate(); err != nil {
			errs = append(errs, FieldError{Field: prefix + ".macros", Message: err.Error()})
		}
	}
	return errs
}

// ValidatePlannedMeals validates every meal of a plan and returns a
// *ValidationError describing all problems, or nil.
func ValidatePlannedMeals(meals []PlannedMeal) error {
	var errs []FieldError
	for i, m := range meals {
		errs = append(errs, m.Validate(fmt.Sprintf("meals[%d]", i))...)
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// MealPlan is a stored plan for one week. Only one live plan exists per
// (user, week start).
type MealPlan struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	WeekStart string
	Meals     []PlannedMeal
	CreatedAt time.Time
}

// ExpiresAt returns the instant after which the plan is no longer served.
func (p *MealPlan) ExpiresAt(ttl time.Duration) time.Time {
	return p.CreatedAt.Add(ttl)
}

// IsLive reports whether the plan is still within its lifetime at now.
func (p *MealPlan) IsLive(now time.Time, ttl time.Duration) bool {
	return now.Before(p.ExpiresAt(ttl))
}

// PlanHorizon tells the generator whether it is planning a week or a single day.
type PlanHorizon string

const (
	PlanHorizonWeek PlanHorizon = "week"
	PlanHorizonDay  PlanHorizon = "day"
)

// PlanRequest is the context handed to the meal-plan generator.
type PlanRequest struct {
	Horizon      PlanHorizon
	WeekStart    string
	GoalType     string
	WeightKg     float64
	InStock      []string
	RecentMacros *NutritionVector
}

// GeneratedPlan is the typed output of the meal-plan generator.
type GeneratedPlan struct {
	Breakfast    string
	Lunch        string
	Dinner       string
	ShoppingList []string
}

// Validate reports missing meal names.
func (g *GeneratedPlan) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(g.Breakfast) == "" {
		errs = append(errs, FieldError{Field: "breakfast", Message: "required"})
	}
	if strings.TrimSpace(g.Lunch) == "" {
		errs = append(errs, FieldError{Field: "lunch", Message: "required"})
	}
	if strings.TrimSpace(g.Dinner) == "" {
		errs = append(errs, FieldError{Field: "dinner", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// PlannedMeals lays the generated breakfast, lunch and dinner out on date.
func (g *GeneratedPlan) PlannedMeals(date string) []PlannedMeal {
	return []PlannedMeal{
		{Date: date, MealType: MealTypeBreakfast, Name: strings.TrimSpace(g.Breakfast)},
		{Date: date, MealType: MealTypeLunch, Name: strings.TrimSpace(g.Lunch)},
		{Date: date, MealType: MealTypeDinner, Name: strings.TrimSpace(g.Dinner)},
	}
}
