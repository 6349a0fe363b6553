package domain

// MealType identifies the slot of the day a meal belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MealTypes lists every meal type in the order a day is usually eaten.
func MealTypes() []MealType {
	return []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeSnack, MealTypeDinner}
}

// PantryStatus is the lifecycle state of a pantry item.
type PantryStatus string

const (
	PantryStatusInStock PantryStatus = "in_stock"
	PantryStatusToBuy   PantryStatus = "to_buy"
)

func (s PantryStatus) String() string { return string(s) }

func (s PantryStatus) IsValid() bool {
	switch s {
	case PantryStatusInStock, PantryStatusToBuy:
		return true
	}
	return false
}

// DefaultGoalType is assumed when a user has not set a goal.
const DefaultGoalType = "maintenance"
