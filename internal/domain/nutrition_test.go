package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNutritionVector_Add(t *testing.T) {
	t.Parallel()

	a := NutritionVector{Calories: 300, Protein: 10, Carbs: 40, Fat: 8, Fiber: 5}
	b := NutritionVector{Calories: 150, Protein: 2.5, Carbs: 20, Fat: 1, Fiber: 0.5}

	got := a.Add(b)
	want := NutritionVector{Calories: 450, Protein: 12.5, Carbs: 60, Fat: 9, Fiber: 5.5}
	if got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
	if a.Add(NutritionVector{}) != a {
		t.Error("adding the zero vector must be the identity")
	}
}

func TestNutritionVector_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		v         NutritionVector
		wantErr   bool
		wantField string
	}{
		{name: "zero", v: NutritionVector{}},
		{name: "positive", v: NutritionVector{Calories: 500, Protein: 20, Carbs: 60, Fat: 15, Fiber: 7}},
		{name: "negative calories", v: NutritionVector{Calories: -1}, wantErr: true, wantField: "calories"},
		{name: "NaN fat", v: NutritionVector{Fat: math.NaN()}, wantErr: true, wantField: "fat"},
		{name: "infinite fiber", v: NutritionVector{Fiber: math.Inf(1)}, wantErr: true, wantField: "fiber"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.v.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Errors[0].Field != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Errors[0].Field, tt.wantField)
			}
		})
	}
}

func TestAverageNutrition(t *testing.T) {
	t.Parallel()

	if got := AverageNutrition(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}

	got := AverageNutrition([]NutritionVector{
		{Calories: 2000, Protein: 100, Carbs: 200, Fat: 60, Fiber: 30},
		{Calories: 1000, Protein: 50, Carbs: 100, Fat: 30, Fiber: 10},
	})
	want := NutritionVector{Calories: 1500, Protein: 75, Carbs: 150, Fat: 45, Fiber: 20}
	if got == nil || *got != want {
		t.Errorf("AverageNutrition() = %+v, want %+v", got, want)
	}
}

func TestNutritionVector_IsZero(t *testing.T) {
	t.Parallel()

	if !(NutritionVector{}).IsZero() {
		t.Error("zero value should be zero")
	}
	if (NutritionVector{Fiber: 0.1}).IsZero() {
		t.Error("non-zero fiber should not be zero")
	}
}
