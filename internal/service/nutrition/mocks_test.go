package nutrition

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

var (
	_ mealRepo   = &mealRepoMock{}
	_ totalsRepo = &totalsRepoMock{}
	_ estimator  = &estimatorMock{}
)

// ---------------------------------------------------------------------------
// mealRepoMock
// ---------------------------------------------------------------------------

type mealRepoMock struct {
	InsertFunc           func(ctx context.Context, m *domain.MealRecord) (*domain.MealRecord, error)
	UpsertSlotFunc       func(ctx context.Context, m *domain.MealRecord) (*domain.MealRecord, bool, error)
	ListEatenBetweenFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MealRecord, error)

	calls struct {
		Insert []struct {
			M *domain.MealRecord
		}
		UpsertSlot []struct {
			M *domain.MealRecord
		}
		ListEatenBetween []struct {
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockInsert           sync.RWMutex
	lockUpsertSlot       sync.RWMutex
	lockListEatenBetween sync.RWMutex
}

func (mock *mealRepoMock) Insert(ctx context.Context, m *domain.MealRecord) (*domain.MealRecord, error) {
	if mock.InsertFunc == nil {
		panic("mealRepoMock.InsertFunc: method is nil but mealRepo.Insert was just called")
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct{ M *domain.MealRecord }{M: m})
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, m)
}

func (mock *mealRepoMock) InsertCalls() []struct{ M *domain.MealRecord } {
	mock.lockInsert.RLock()
	defer mock.lockInsert.RUnlock()
	return mock.calls.Insert
}

func (mock *mealRepoMock) UpsertSlot(ctx context.Context, m *domain.MealRecord) (*domain.MealRecord, bool, error) {
	if mock.UpsertSlotFunc == nil {
		panic("mealRepoMock.UpsertSlotFunc: method is nil but mealRepo.UpsertSlot was just called")
	}
	mock.lockUpsertSlot.Lock()
	mock.calls.UpsertSlot = append(mock.calls.UpsertSlot, struct{ M *domain.MealRecord }{M: m})
	mock.lockUpsertSlot.Unlock()
	return mock.UpsertSlotFunc(ctx, m)
}

func (mock *mealRepoMock) UpsertSlotCalls() []struct{ M *domain.MealRecord } {
	mock.lockUpsertSlot.RLock()
	defer mock.lockUpsertSlot.RUnlock()
	return mock.calls.UpsertSlot
}

func (mock *mealRepoMock) ListEatenBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MealRecord, error) {
	if mock.ListEatenBetweenFunc == nil {
		panic("mealRepoMock.ListEatenBetweenFunc: method is nil but mealRepo.ListEatenBetween was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{UserID: userID, From: from, To: to}
	mock.lockListEatenBetween.Lock()
	mock.calls.ListEatenBetween = append(mock.calls.ListEatenBetween, callInfo)
	mock.lockListEatenBetween.Unlock()
	return mock.ListEatenBetweenFunc(ctx, userID, from, to)
}

func (mock *mealRepoMock) ListEatenBetweenCalls() []struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListEatenBetween.RLock()
	defer mock.lockListEatenBetween.RUnlock()
	return mock.calls.ListEatenBetween
}

// ---------------------------------------------------------------------------
// totalsRepoMock
// ---------------------------------------------------------------------------

type totalsRepoMock struct {
	IncrementFunc func(ctx context.Context, userID uuid.UUID, day time.Time, v domain.NutritionVector) (*domain.NutritionTotals, error)
	GetFunc       func(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.NutritionTotals, error)
	ListRangeFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutritionTotals, error)
	RecentFunc    func(ctx context.Context, userID uuid.UUID, n int) ([]domain.NutritionTotals, error)

	calls struct {
		Increment []struct {
			UserID uuid.UUID
			Day    time.Time
			V      domain.NutritionVector
		}
		Get []struct {
			UserID uuid.UUID
			Day    time.Time
		}
		ListRange []struct {
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		Recent []struct {
			UserID uuid.UUID
			N      int
		}
	}
	lockIncrement sync.RWMutex
	lockGet       sync.RWMutex
	lockListRange sync.RWMutex
	lockRecent    sync.RWMutex
}

func (mock *totalsRepoMock) Increment(ctx context.Context, userID uuid.UUID, day time.Time, v domain.NutritionVector) (*domain.NutritionTotals, error) {
	if mock.IncrementFunc == nil {
		panic("totalsRepoMock.IncrementFunc: method is nil but totalsRepo.Increment was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Day    time.Time
		V      domain.NutritionVector
	}{UserID: userID, Day: day, V: v}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, userID, day, v)
}

func (mock *totalsRepoMock) IncrementCalls() []struct {
	UserID uuid.UUID
	Day    time.Time
	V      domain.NutritionVector
} {
	mock.lockIncrement.RLock()
	defer mock.lockIncrement.RUnlock()
	return mock.calls.Increment
}

func (mock *totalsRepoMock) Get(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.NutritionTotals, error) {
	if mock.GetFunc == nil {
		panic("totalsRepoMock.GetFunc: method is nil but totalsRepo.Get was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Day    time.Time
	}{UserID: userID, Day: day}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, day)
}

func (mock *totalsRepoMock) GetCalls() []struct {
	UserID uuid.UUID
	Day    time.Time
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *totalsRepoMock) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutritionTotals, error) {
	if mock.ListRangeFunc == nil {
		panic("totalsRepoMock.ListRangeFunc: method is nil but totalsRepo.ListRange was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{UserID: userID, From: from, To: to}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, userID, from, to)
}

func (mock *totalsRepoMock) ListRangeCalls() []struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListRange.RLock()
	defer mock.lockListRange.RUnlock()
	return mock.calls.ListRange
}

func (mock *totalsRepoMock) Recent(ctx context.Context, userID uuid.UUID, n int) ([]domain.NutritionTotals, error) {
	if mock.RecentFunc == nil {
		panic("totalsRepoMock.RecentFunc: method is nil but totalsRepo.Recent was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		N      int
	}{UserID: userID, N: n}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, userID, n)
}

func (mock *totalsRepoMock) RecentCalls() []struct {
	UserID uuid.UUID
	N      int
} {
	mock.lockRecent.RLock()
	defer mock.lockRecent.RUnlock()
	return mock.calls.Recent
}

// ---------------------------------------------------------------------------
// estimatorMock
// ---------------------------------------------------------------------------

type estimatorMock struct {
	EstimateFunc func(ctx context.Context, description string) (domain.NutritionVector, error)

	calls struct {
		Estimate []struct {
			Description string
		}
	}
	lockEstimate sync.RWMutex
}

func (mock *estimatorMock) Estimate(ctx context.Context, description string) (domain.NutritionVector, error) {
	if mock.EstimateFunc == nil {
		panic("estimatorMock.EstimateFunc: method is nil but estimator.Estimate was just called")
	}
	mock.lockEstimate.Lock()
	mock.calls.Estimate = append(mock.calls.Estimate, struct{ Description string }{Description: description})
	mock.lockEstimate.Unlock()
	return mock.EstimateFunc(ctx, description)
}

func (mock *estimatorMock) EstimateCalls() []struct{ Description string } {
	mock.lockEstimate.RLock()
	defer mock.lockEstimate.RUnlock()
	return mock.calls.Estimate
}
