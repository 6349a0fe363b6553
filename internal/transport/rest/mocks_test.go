package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/service/mealplan"
	"github.com/heartmarshall/pebbl-backend/internal/service/nutrition"
	"github.com/heartmarshall/pebbl-backend/internal/service/pantry"
	"github.com/heartmarshall/pebbl-backend/internal/service/profile"
)

var (
	_ nutritionService = &nutritionServiceMock{}
	_ mealPlanService  = &mealPlanServiceMock{}
	_ pantryService    = &pantryServiceMock{}
	_ profileService   = &profileServiceMock{}
)

type nutritionServiceMock struct {
	RecordMealFunc           func(ctx context.Context, input nutrition.RecordMealInput) (*domain.NutritionTotals, error)
	RecordDayFunc            func(ctx context.Context, input nutrition.RecordDayInput) (*nutrition.RecordDayResult, error)
	RecordSingleMealSlotFunc func(ctx context.Context, input nutrition.RecordSlotInput) (bool, error)
	GetTotalsFunc            func(ctx context.Context, day string) (*domain.NutritionTotals, error)
	ListTotalsFunc           func(ctx context.Context, input nutrition.ListTotalsInput) ([]domain.NutritionTotals, error)
	TodaysMealsFunc          func(ctx context.Context) ([]domain.MealRecord, error)
}

func (m *nutritionServiceMock) RecordMeal(ctx context.Context, input nutrition.RecordMealInput) (*domain.NutritionTotals, error) {
	return m.RecordMealFunc(ctx, input)
}

func (m *nutritionServiceMock) RecordDay(ctx context.Context, input nutrition.RecordDayInput) (*nutrition.RecordDayResult, error) {
	return m.RecordDayFunc(ctx, input)
}

func (m *nutritionServiceMock) RecordSingleMealSlot(ctx context.Context, input nutrition.RecordSlotInput) (bool, error) {
	return m.RecordSingleMealSlotFunc(ctx, input)
}

func (m *nutritionServiceMock) GetTotals(ctx context.Context, day string) (*domain.NutritionTotals, error) {
	return m.GetTotalsFunc(ctx, day)
}

func (m *nutritionServiceMock) ListTotals(ctx context.Context, input nutrition.ListTotalsInput) ([]domain.NutritionTotals, error) {
	return m.ListTotalsFunc(ctx, input)
}

func (m *nutritionServiceMock) TodaysMeals(ctx context.Context) ([]domain.MealRecord, error) {
	return m.TodaysMealsFunc(ctx)
}

type mealPlanServiceMock struct {
	GetPlanFunc      func(ctx context.Context, weekStart string) (*domain.MealPlan, error)
	GeneratePlanFunc func(ctx context.Context, weekStart string) (*domain.MealPlan, error)
	UpdatePlanFunc   func(ctx context.Context, input mealplan.UpdatePlanInput) (*domain.MealPlan, error)
	SuggestMealsFunc func(ctx context.Context) (*mealplan.Suggestion, error)
}

func (m *mealPlanServiceMock) GetPlan(ctx context.Context, weekStart string) (*domain.MealPlan, error) {
	return m.GetPlanFunc(ctx, weekStart)
}

func (m *mealPlanServiceMock) GeneratePlan(ctx context.Context, weekStart string) (*domain.MealPlan, error) {
	return m.GeneratePlanFunc(ctx, weekStart)
}

func (m *mealPlanServiceMock) UpdatePlan(ctx context.Context, input mealplan.UpdatePlanInput) (*domain.MealPlan, error) {
	return m.UpdatePlanFunc(ctx, input)
}

func (m *mealPlanServiceMock) SuggestMeals(ctx context.Context) (*mealplan.Suggestion, error) {
	return m.SuggestMealsFunc(ctx)
}

type pantryServiceMock struct {
	AddItemFunc    func(ctx context.Context, input pantry.AddItemInput) (*domain.PantryItem, error)
	SetStatusFunc  func(ctx context.Context, input pantry.SetStatusInput) (*domain.PantryItem, error)
	RemoveItemFunc func(ctx context.Context, itemID uuid.UUID) error
	ListItemsFunc  func(ctx context.Context, input pantry.ListItemsInput) ([]domain.PantryItem, error)
}

func (m *pantryServiceMock) AddItem(ctx context.Context, input pantry.AddItemInput) (*domain.PantryItem, error) {
	return m.AddItemFunc(ctx, input)
}

func (m *pantryServiceMock) SetStatus(ctx context.Context, input pantry.SetStatusInput) (*domain.PantryItem, error) {
	return m.SetStatusFunc(ctx, input)
}

func (m *pantryServiceMock) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	return m.RemoveItemFunc(ctx, itemID)
}

func (m *pantryServiceMock) ListItems(ctx context.Context, input pantry.ListItemsInput) ([]domain.PantryItem, error) {
	return m.ListItemsFunc(ctx, input)
}

type profileServiceMock struct {
	LogWeightFunc   func(ctx context.Context, input profile.LogWeightInput) (*domain.WeightEntry, error)
	ListWeightsFunc func(ctx context.Context, input profile.ListWeightsInput) ([]domain.WeightEntry, error)
	SetGoalFunc     func(ctx context.Context, input profile.SetGoalInput) (*domain.Goal, error)
	GetGoalFunc     func(ctx context.Context) (*domain.Goal, error)

	LogActivityFunc    func(ctx context.Context, input profile.LogActivityInput) (*domain.Activity, error)
	ListActivitiesFunc func(ctx context.Context, input profile.ListActivitiesInput) ([]domain.Activity, error)
}

func (m *profileServiceMock) LogWeight(ctx context.Context, input profile.LogWeightInput) (*domain.WeightEntry, error) {
	return m.LogWeightFunc(ctx, input)
}

func (m *profileServiceMock) ListWeights(ctx context.Context, input profile.ListWeightsInput) ([]domain.WeightEntry, error) {
	return m.ListWeightsFunc(ctx, input)
}

func (m *profileServiceMock) SetGoal(ctx context.Context, input profile.SetGoalInput) (*domain.Goal, error) {
	return m.SetGoalFunc(ctx, input)
}

func (m *profileServiceMock) GetGoal(ctx context.Context) (*domain.Goal, error) {
	return m.GetGoalFunc(ctx)
}

func (m *profileServiceMock) LogActivity(ctx context.Context, input profile.LogActivityInput) (*domain.Activity, error) {
	return m.LogActivityFunc(ctx, input)
}

func (m *profileServiceMock) ListActivities(ctx context.Context, input profile.ListActivitiesInput) ([]domain.Activity, error) {
	return m.ListActivitiesFunc(ctx, input)
}
