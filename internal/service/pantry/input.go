package pantry

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

// AddItemInput holds the parameters for adding a pantry item.
type AddItemInput struct {
	Name   string
	Status domain.PantryStatus // empty means in_stock
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: in_stock, to_buy"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetStatusInput holds the parameters for moving an item between lists.
type SetStatusInput struct {
	ItemID uuid.UUID
	Status domain.PantryStatus
}

// Validate checks all fields and collects all errors.
func (i SetStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: in_stock, to_buy"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListItemsInput filters the listing. A nil Status lists both lists.
type ListItemsInput struct {
	Status *domain.PantryStatus
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", "must be one of: in_stock, to_buy")
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	n := domain.NormalizeName(name)
	if n == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(n) > domain.MaxPantryNameLength {
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", domain.MaxPantryNameLength)}}
	}
	return nil
}
