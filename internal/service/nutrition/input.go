package nutrition

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

// RecordMealInput holds the parameters for recording one meal.
type RecordMealInput struct {
	Day         string // YYYY-MM-DD; empty means today (UTC)
	MealType    domain.MealType
	Description string
}

// Validate checks all fields and collects all errors.
func (i RecordMealInput) Validate() error {
	var errs []domain.FieldError

	if i.Day != "" {
		if _, err := time.Parse(domain.DateLayout, i.Day); err != nil {
			errs = append(errs, domain.FieldError{Field: "day", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if !i.MealType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal_type", Message: "invalid value"})
	}
	errs = append(errs, validateDescription("description", i.Description)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RecordSlotInput holds the parameters for the one-meal-per-type-per-day path.
type RecordSlotInput struct {
	Date        string
	MealType    domain.MealType
	Description string
}

// Validate checks all fields and collects all errors.
func (i RecordSlotInput) Validate() error {
	var errs []domain.FieldError

	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if _, err := time.Parse(domain.DateLayout, i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !i.MealType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal_type", Message: "invalid value"})
	}
	errs = append(errs, validateDescription("description", i.Description)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RecordDayInput holds several meals of one day, keyed by meal type.
// Blank descriptions are skipped.
type RecordDayInput struct {
	Day   string
	Meals map[domain.MealType]string
}

// Validate checks all fields and collects all errors.
func (i RecordDayInput) Validate() error {
	var errs []domain.FieldError

	if i.Day != "" {
		if _, err := time.Parse(domain.DateLayout, i.Day); err != nil {
			errs = append(errs, domain.FieldError{Field: "day", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	described := 0
	for _, mt := range domain.MealTypes() {
		desc, ok := i.Meals[mt]
		if !ok || strings.TrimSpace(desc) == "" {
			continue
		}
		described++
		errs = append(errs, validateDescription(fmt.Sprintf("meals.%s", mt), desc)...)
	}
	for mt := range i.Meals {
		if !mt.IsValid() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("meals.%s", mt), Message: "invalid meal type"})
		}
	}
	if described == 0 {
		errs = append(errs, domain.FieldError{Field: "meals", Message: "at least one meal is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTotalsInput holds an inclusive date range.
type ListTotalsInput struct {
	From string
	To   string
}

// Validate checks all fields and collects all errors.
func (i ListTotalsInput) Validate() error {
	var errs []domain.FieldError

	from, errFrom := domain.ParseDate("from", i.From)
	if errFrom != nil {
		errs = append(errs, domain.FieldErrorsOf(errFrom)...)
	}
	to, errTo := domain.ParseDate("to", i.To)
	if errTo != nil {
		errs = append(errs, domain.FieldErrorsOf(errTo)...)
	}
	if errFrom == nil && errTo == nil {
		switch {
		case to.Before(from):
			errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
		case to.Sub(from) >= MaxRangeDays*24*time.Hour:
			errs = append(errs, domain.FieldError{Field: "to", Message: fmt.Sprintf("range must not exceed %d days", MaxRangeDays)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateDescription(field, desc string) []domain.FieldError {
	d := domain.TrimDescription(desc)
	if d == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if utf8.RuneCountInString(d) > domain.MaxDescriptionLength {
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", domain.MaxDescriptionLength)}}
	}
	return nil
}
