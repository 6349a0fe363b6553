// Package profile manages a user's weight log, activity log and goal.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

type profileRepo interface {
	InsertWeight(ctx context.Context, w *domain.WeightEntry) (*domain.WeightEntry, error)
	LatestWeight(ctx context.Context, userID uuid.UUID) (*domain.WeightEntry, error)
	ListWeights(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WeightEntry, error)
	InsertActivity(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Activity, error)
	UpsertGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	GetGoal(ctx context.Context, userID uuid.UUID) (*domain.Goal, error)
}

// Service provides weight, activity and goal operations.
type Service struct {
	repo  profileRepo
	clock domain.Clock
	log   *slog.Logger
}

// NewService creates a new profile service.
func NewService(log *slog.Logger, repo profileRepo, clock domain.Clock) *Service {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &Service{
		repo:  repo,
		clock: clock,
		log:   log.With("service", "profile"),
	}
}
