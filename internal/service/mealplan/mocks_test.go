package mealplan

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

var (
	_ planRepo         = &memPlans{}
	_ profileReader    = &profileReaderMock{}
	_ pantryReconciler = &pantryReconcilerMock{}
	_ macroSource      = &macroSourceMock{}
	_ generator        = &generatorMock{}
)

// memPlans is an in-memory plan store with the same upsert and liveness
// rules as the PostgreSQL repository.
type memPlans struct {
	mu    sync.Mutex
	plans map[string]domain.MealPlan
	err   error
}

func newMemPlans() *memPlans {
	return &memPlans{plans: make(map[string]domain.MealPlan)}
}

func planKey(userID uuid.UUID, weekStart string) string {
	return userID.String() + "/" + weekStart
}

func (m *memPlans) Upsert(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	k := planKey(plan.UserID, plan.WeekStart)
	stored := *plan
	if prev, ok := m.plans[k]; ok {
		stored.ID = prev.ID
	}
	m.plans[k] = stored
	return &stored, nil
}

func (m *memPlans) GetLive(ctx context.Context, userID uuid.UUID, weekStart string, notBefore time.Time) (*domain.MealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[planKey(userID, weekStart)]
	if !ok || !p.CreatedAt.After(notBefore) {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (m *memPlans) UpdateMeals(ctx context.Context, userID, planID uuid.UUID, meals []domain.PlannedMeal, notBefore time.Time) (*domain.MealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, p := range m.plans {
		if p.ID == planID && p.UserID == userID && p.CreatedAt.After(notBefore) {
			p.Meals = meals
			m.plans[k] = p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

type profileReaderMock struct {
	CurrentWeightFunc   func(ctx context.Context, userID uuid.UUID) (float64, bool, error)
	CurrentGoalTypeFunc func(ctx context.Context, userID uuid.UUID) (string, bool, error)
}

func (mock *profileReaderMock) CurrentWeight(ctx context.Context, userID uuid.UUID) (float64, bool, error) {
	if mock.CurrentWeightFunc == nil {
		panic("profileReaderMock.CurrentWeightFunc: method is nil but profileReader.CurrentWeight was just called")
	}
	return mock.CurrentWeightFunc(ctx, userID)
}

func (mock *profileReaderMock) CurrentGoalType(ctx context.Context, userID uuid.UUID) (string, bool, error) {
	if mock.CurrentGoalTypeFunc == nil {
		panic("profileReaderMock.CurrentGoalTypeFunc: method is nil but profileReader.CurrentGoalType was just called")
	}
	return mock.CurrentGoalTypeFunc(ctx, userID)
}

type pantryReconcilerMock struct {
	InStockNamesFunc         func(ctx context.Context, userID uuid.UUID) ([]string, error)
	UpsertFromSuggestionFunc func(ctx context.Context, userID uuid.UUID, name string) (*domain.PantryItem, error)

	calls struct {
		UpsertFromSuggestion []struct {
			UserID uuid.UUID
			Name   string
		}
	}
	lockUpsertFromSuggestion sync.RWMutex
}

func (mock *pantryReconcilerMock) InStockNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if mock.InStockNamesFunc == nil {
		panic("pantryReconcilerMock.InStockNamesFunc: method is nil but pantryReconciler.InStockNames was just called")
	}
	return mock.InStockNamesFunc(ctx, userID)
}

func (mock *pantryReconcilerMock) UpsertFromSuggestion(ctx context.Context, userID uuid.UUID, name string) (*domain.PantryItem, error) {
	if mock.UpsertFromSuggestionFunc == nil {
		panic("pantryReconcilerMock.UpsertFromSuggestionFunc: method is nil but pantryReconciler.UpsertFromSuggestion was just called")
	}
	mock.lockUpsertFromSuggestion.Lock()
	mock.calls.UpsertFromSuggestion = append(mock.calls.UpsertFromSuggestion, struct {
		UserID uuid.UUID
		Name   string
	}{userID, name})
	mock.lockUpsertFromSuggestion.Unlock()
	return mock.UpsertFromSuggestionFunc(ctx, userID, name)
}

func (mock *pantryReconcilerMock) UpsertFromSuggestionCalls() []struct {
	UserID uuid.UUID
	Name   string
} {
	mock.lockUpsertFromSuggestion.RLock()
	defer mock.lockUpsertFromSuggestion.RUnlock()
	return mock.calls.UpsertFromSuggestion
}

type macroSourceMock struct {
	RecentAveragesFunc func(ctx context.Context, userID uuid.UUID, n int) (*domain.NutritionVector, error)
}

func (mock *macroSourceMock) RecentAverages(ctx context.Context, userID uuid.UUID, n int) (*domain.NutritionVector, error) {
	if mock.RecentAveragesFunc == nil {
		panic("macroSourceMock.RecentAveragesFunc: method is nil but macroSource.RecentAverages was just called")
	}
	return mock.RecentAveragesFunc(ctx, userID, n)
}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, req domain.PlanRequest) (*domain.GeneratedPlan, error)

	calls struct {
		Generate []struct {
			Req domain.PlanRequest
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, req domain.PlanRequest) (*domain.GeneratedPlan, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct{ Req domain.PlanRequest }{req})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *generatorMock) GenerateCalls() []struct{ Req domain.PlanRequest } {
	mock.lockGenerate.RLock()
	defer mock.lockGenerate.RUnlock()
	return mock.calls.Generate
}
