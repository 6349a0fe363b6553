package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxDescriptionLength caps free-text meal descriptions.
const MaxDescriptionLength = 1000

// MealRecord is one logged meal. Records written by the ledger path are
// immutable; slot records (SlotDate set) have their description replaced in place.
type MealRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	MealType    MealType
	Description string
	EatenAt     time.Time
	SlotDate    *time.Time
	Nutrition   *NutritionVector
	CreatedAt   time.Time
}
