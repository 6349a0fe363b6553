package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWeightKg is assumed when a user has never logged a weight.
const DefaultWeightKg = 75.0

// WeightEntry is one body-weight measurement.
type WeightEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WeightKg   float64
	MeasuredAt string
	CreatedAt  time.Time
}

// Goal is the user's current health goal. One per user.
type Goal struct {
	UserID         uuid.UUID
	GoalType       string
	TargetWeightKg *float64
	TargetDate     *time.Time
	UpdatedAt      time.Time
}

// Activity is one logged bout of exercise. Steps and duration are optional.
type Activity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        string
	Steps       *int
	DurationMin *int
	CreatedAt   time.Time
}
