package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// NutritionVector is the macro breakdown of a meal or a day.
// Calories are kcal, every other component is grams.
type NutritionVector struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the component-wise sum of v and o.
func (v NutritionVector) Add(o NutritionVector) NutritionVector {
	return NutritionVector{
		Calories: v.Calories + o.Calories,
		Protein:  v.Protein + o.Protein,
		Carbs:    v.Carbs + o.Carbs,
		Fat:      v.Fat + o.Fat,
		Fiber:    v.Fiber + o.Fiber,
	}
}

// Scale multiplies every component by f.
func (v NutritionVector) Scale(f float64) NutritionVector {
	return NutritionVector{
		Calories: v.Calories * f,
		Protein:  v.Protein * f,
		Carbs:    v.Carbs * f,
		Fat:      v.Fat * f,
		Fiber:    v.Fiber * f,
	}
}

// IsZero reports whether every component is zero, as for the estimator fallback.
func (v NutritionVector) IsZero() bool {
	return v == NutritionVector{}
}

// Validate reports every component that is negative, NaN or infinite.
func (v NutritionVector) Validate() error {
	var errs []FieldError
	check := func(field string, x float64) {
		switch {
		case math.IsNaN(x) || math.IsInf(x, 0):
			errs = append(errs, FieldError{Field: field, Message: "must be a finite number"})
		case x < 0:
			errs = append(errs, FieldError{Field: field, Message: "must not be negative"})
		}
	}
	check("calories", v.Calories)
	check("protein", v.Protein)
	check("carbs", v.Carbs)
	check("fat", v.Fat)
	check("fiber", v.Fiber)

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// AverageNutrition returns the arithmetic mean of vs, or nil when vs is empty.
func AverageNutrition(vs []NutritionVector) *NutritionVector {
	if len(vs) == 0 {
		return nil
	}
	var sum NutritionVector
	for _, v := range vs {
		sum = sum.Add(v)
	}
	avg := sum.Scale(1 / float64(len(vs)))
	return &avg
}

// NutritionTotals is the accumulated nutrition of one user for one UTC day.
type NutritionTotals struct {
	UserID    uuid.UUID
	Day       time.Time
	Nutrition NutritionVector
	UpdatedAt time.Time
}
