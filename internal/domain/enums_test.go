package domain

import "testing"

func TestMealType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mt   MealType
		want bool
	}{
		{MealTypeBreakfast, true},
		{MealTypeLunch, true},
		{MealTypeDinner, true},
		{MealTypeSnack, true},
		{MealType("brunch"), false},
		{MealType("Breakfast"), false},
		{MealType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mt), func(t *testing.T) {
			t.Parallel()
			if got := tt.mt.IsValid(); got != tt.want {
				t.Errorf("MealType(%q).IsValid() = %v, want %v", tt.mt, got, tt.want)
			}
		})
	}
}

func TestMealTypes_AllValid(t *testing.T) {
	t.Parallel()

	all := MealTypes()
	if len(all) != 4 {
		t.Fatalf("expected 4 meal types, got %d", len(all))
	}
	for _, mt := range all {
		if !mt.IsValid() {
			t.Errorf("MealTypes() returned invalid %q", mt)
		}
	}
}

func TestPantryStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status PantryStatus
		want   bool
	}{
		{PantryStatusInStock, true},
		{PantryStatusToBuy, true},
		{PantryStatus("used_up"), false},
		{PantryStatus("IN_STOCK"), false},
		{PantryStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("PantryStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestPantryStatus_String(t *testing.T) {
	t.Parallel()
	if got := PantryStatusToBuy.String(); got != "to_buy" {
		t.Errorf("got %q, want to_buy", got)
	}
}
