package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxPantryNameLength caps pantry item display names.
const MaxPantryNameLength = 200

// PantryItem is a grocery item a user either has or needs to buy.
// At most one item exists per (user, normalized name, status).
type PantryItem struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	NormalizedName string
	Status         PantryStatus
	CreatedAt      time.Time
}
