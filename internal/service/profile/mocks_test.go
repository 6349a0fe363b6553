package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	InsertWeightFunc func(ctx context.Context, w *domain.WeightEntry) (*domain.WeightEntry, error)
	LatestWeightFunc func(ctx context.Context, userID uuid.UUID) (*domain.WeightEntry, error)
	ListWeightsFunc  func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WeightEntry, error)
	UpsertGoalFunc   func(ctx context.Context, g *domain.Goal) (*domain.Goal, error)

	InsertActivityFunc func(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	ListActivitiesFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Activity, error)
	GetGoalFunc      func(ctx context.Context, userID uuid.UUID) (*domain.Goal, error)

	calls struct {
		ListWeights []struct {
			UserID uuid.UUID
			Limit  int
		}
		UpsertGoal []struct {
			Goal *domain.Goal
		}
		ListActivities []struct {
			UserID uuid.UUID
			Limit  int
		}
	}
	lock sync.RWMutex
}

func (mock *profileRepoMock) InsertWeight(ctx context.Context, w *domain.WeightEntry) (*domain.WeightEntry, error) {
	if mock.InsertWeightFunc == nil {
		panic("profileRepoMock.InsertWeightFunc: method is nil but profileRepo.InsertWeight was just called")
	}
	return mock.InsertWeightFunc(ctx, w)
}

func (mock *profileRepoMock) LatestWeight(ctx context.Context, userID uuid.UUID) (*domain.WeightEntry, error) {
	if mock.LatestWeightFunc == nil {
		panic("profileRepoMock.LatestWeightFunc: method is nil but profileRepo.LatestWeight was just called")
	}
	return mock.LatestWeightFunc(ctx, userID)
}

func (mock *profileRepoMock) ListWeights(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WeightEntry, error) {
	if mock.ListWeightsFunc == nil {
		panic("profileRepoMock.ListWeightsFunc: method is nil but profileRepo.ListWeights was just called")
	}
	mock.lock.Lock()
	mock.calls.ListWeights = append(mock.calls.ListWeights, struct {
		UserID uuid.UUID
		Limit  int
	}{userID, limit})
	mock.lock.Unlock()
	return mock.ListWeightsFunc(ctx, userID, limit)
}

func (mock *profileRepoMock) ListWeightsCalls() []struct {
	UserID uuid.UUID
	Limit  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListWeights
}

func (mock *profileRepoMock) UpsertGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if mock.UpsertGoalFunc == nil {
		panic("profileRepoMock.UpsertGoalFunc: method is nil but profileRepo.UpsertGoal was just called")
	}
	mock.lock.Lock()
	mock.calls.UpsertGoal = append(mock.calls.UpsertGoal, struct{ Goal *domain.Goal }{g})
	mock.lock.Unlock()
	return mock.UpsertGoalFunc(ctx, g)
}

func (mock *profileRepoMock) UpsertGoalCalls() []struct{ Goal *domain.Goal } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpsertGoal
}

func (mock *profileRepoMock) GetGoal(ctx context.Context, userID uuid.UUID) (*domain.Goal, error) {
	if mock.GetGoalFunc == nil {
		panic("profileRepoMock.GetGoalFunc: method is nil but profileRepo.GetGoal was just called")
	}
	return mock.GetGoalFunc(ctx, userID)
}

func (mock *profileRepoMock) InsertActivity(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	if mock.InsertActivityFunc == nil {
		panic("profileRepoMock.InsertActivityFunc: method is nil but profileRepo.InsertActivity was just called")
	}
	return mock.InsertActivityFunc(ctx, a)
}

func (mock *profileRepoMock) ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Activity, error) {
	if mock.ListActivitiesFunc == nil {
		panic("profileRepoMock.ListActivitiesFunc: method is nil but profileRepo.ListActivities was just called")
	}
	mock.lock.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, struct {
		UserID uuid.UUID
		Limit  int
	}{userID, limit})
	mock.lock.Unlock()
	return mock.ListActivitiesFunc(ctx, userID, limit)
}

func (mock *profileRepoMock) ListActivitiesCalls() []struct {
	UserID uuid.UUID
	Limit  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListActivities
}
