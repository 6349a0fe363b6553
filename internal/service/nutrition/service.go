// Package nutrition records meals and accumulates per-day nutrition totals.
package nutrition

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

type mealRepo interface {
	Insert(ctx context.Context, m *domain.MealRecord) (*domain.MealRecord, error)
	UpsertSlot(ctx context.Context, m *domain.MealRecord) (*domain.MealRecord, bool, error)
	ListEatenBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MealRecord, error)
}

type totalsRepo interface {
	Increment(ctx context.Context, userID uuid.UUID, day time.Time, v domain.NutritionVector) (*domain.NutritionTotals, error)
	Get(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.NutritionTotals, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutritionTotals, error)
	Recent(ctx context.Context, userID uuid.UUID, n int) ([]domain.NutritionTotals, error)
}

type estimator interface {
	Estimate(ctx context.Context, description string) (domain.NutritionVector, error)
}

// Metric labels for the entry paths.
const (
	pathLedger = "ledger"
	pathSlot   = "slot"
	pathDay    = "day"
)

// MaxRangeDays bounds ListTotals queries.
const MaxRangeDays = 366

// Service provides meal recording and nutrition totals.
type Service struct {
	meals     mealRepo
	totals    totalsRepo
	estimator estimator
	clock     domain.Clock
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewService creates a new nutrition service. clock defaults to
// domain.SystemClock; m may be nil.
func NewService(
	log *slog.Logger,
	meals mealRepo,
	totals totalsRepo,
	est estimator,
	clock domain.Clock,
	m *metrics.Metrics,
) *Service {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &Service{
		meals:     meals,
		totals:    totals,
		estimator: est,
		clock:     clock,
		metrics:   m,
		log:       log.With("service", "nutrition"),
	}
}

// estimate asks the estimator for a vector. Any failure degrades to the zero
// vector: estimates are advisory and never fail a recording. ok is false when
// the fallback was used.
func (s *Service) estimate(ctx context.Context, description string) (v domain.NutritionVector, ok bool) {
	v, err := s.estimator.Estimate(ctx, description)
	if err == nil {
		err = v.Validate()
	}
	if err == nil {
		return v, true
	}

	// A cancelled request must not be recorded as an estimator problem.
	reason := "upstream"
	if ctx.Err() != nil {
		reason = "canceled"
	}
	s.metrics.EstimateFallback(reason)
	s.log.WarnContext(ctx, "nutrition estimate unavailable, using zero vector",
		slog.String("reason", reason),
		slog.String("error", err.Error()),
	)
	return domain.NutritionVector{}, false
}
