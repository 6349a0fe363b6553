package profile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

const (
	maxWeightKg      = 700.0
	maxMeasuredAtLen = 50
	maxGoalTypeLen   = 100

	maxActivityTypeLen = 100
	maxSteps           = 200_000
	maxDurationMin     = 24 * 60

	// DefaultWeightsLimit is used when ListWeightsInput.Limit is zero.
	DefaultWeightsLimit = 30
	// MaxWeightsLimit caps a single listing.
	MaxWeightsLimit = 365

	// DefaultActivitiesLimit is used when ListActivitiesInput.Limit is zero.
	DefaultActivitiesLimit = 50
	// MaxActivitiesLimit caps a single listing.
	MaxActivitiesLimit = 500
)

// LogWeightInput holds the parameters for logging a weight.
type LogWeightInput struct {
	WeightKg   float64
	MeasuredAt string // free-form label such as "morning"
}

// Validate checks all fields and collects all errors.
func (i LogWeightInput) Validate() error {
	var errs []domain.FieldError

	if i.WeightKg <= 0 || i.WeightKg > maxWeightKg {
		errs = append(errs, domain.FieldError{Field: "weight_kg", Message: fmt.Sprintf("must be in (0, %.0f]", maxWeightKg)})
	}
	if utf8.RuneCountInString(i.MeasuredAt) > maxMeasuredAtLen {
		errs = append(errs, domain.FieldError{Field: "measured_at", Message: fmt.Sprintf("max %d characters", maxMeasuredAtLen)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListWeightsInput holds the parameters for listing weights.
type ListWeightsInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListWeightsInput) Validate() error {
	if i.Limit < 0 || i.Limit > MaxWeightsLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxWeightsLimit))
	}
	return nil
}

// SetGoalInput holds the parameters for replacing the user's goal.
type SetGoalInput struct {
	GoalType       string
	TargetWeightKg *float64
	TargetDate     string // YYYY-MM-DD, optional
}

// Validate checks all fields and collects all errors.
func (i SetGoalInput) Validate() error {
	var errs []domain.FieldError

	gt := strings.TrimSpace(i.GoalType)
	switch {
	case gt == "":
		errs = append(errs, domain.FieldError{Field: "goal_type", Message: "required"})
	case utf8.RuneCountInString(gt) > maxGoalTypeLen:
		errs = append(errs, domain.FieldError{Field: "goal_type", Message: fmt.Sprintf("max %d characters", maxGoalTypeLen)})
	}

	if i.TargetWeightKg != nil && (*i.TargetWeightKg <= 0 || *i.TargetWeightKg > maxWeightKg) {
		errs = append(errs, domain.FieldError{Field: "target_weight_kg", Message: fmt.Sprintf("must be in (0, %.0f]", maxWeightKg)})
	}
	if i.TargetDate != "" {
		if _, err := domain.ParseDate("target_date", i.TargetDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "target_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LogActivityInput holds the parameters for logging an activity.
type LogActivityInput struct {
	Type        string // "walk", "run", "cycling"...
	Steps       *int
	DurationMin *int
}

// Validate checks all fields and collects all errors.
func (i LogActivityInput) Validate() error {
	var errs []domain.FieldError

	t := strings.TrimSpace(i.Type)
	switch {
	case t == "":
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	case utf8.RuneCountInString(t) > maxActivityTypeLen:
		errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("max %d characters", maxActivityTypeLen)})
	}
	if i.Steps != nil && (*i.Steps < 0 || *i.Steps > maxSteps) {
		errs = append(errs, domain.FieldError{Field: "steps", Message: fmt.Sprintf("must be between 0 and %d", maxSteps)})
	}
	if i.DurationMin != nil && (*i.DurationMin < 0 || *i.DurationMin > maxDurationMin) {
		errs = append(errs, domain.FieldError{Field: "duration", Message: fmt.Sprintf("must be between 0 and %d minutes", maxDurationMin)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListActivitiesInput holds the parameters for listing activities.
type ListActivitiesInput struct {
	Limit int
}

// Validate checks the limit range.
func (i ListActivitiesInput) Validate() error {
	if i.Limit < 0 || i.Limit > MaxActivitiesLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxActivitiesLimit))
	}
	return nil
}
