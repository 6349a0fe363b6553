// Package mealplan generates, caches and edits weekly meal plans, and
// produces single-day meal suggestions whose shopping list is written back
// to the pantry.
package mealplan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/config"
	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

type planRepo interface {
	Upsert(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error)
	GetLive(ctx context.Context, userID uuid.UUID, weekStart string, notBefore time.Time) (*domain.MealPlan, error)
	UpdateMeals(ctx context.Context, userID, planID uuid.UUID, meals []domain.PlannedMeal, notBefore time.Time) (*domain.MealPlan, error)
}

type profileReader interface {
	CurrentWeight(ctx context.Context, userID uuid.UUID) (float64, bool, error)
	CurrentGoalType(ctx context.Context, userID uuid.UUID) (string, bool, error)
}

type pantryReconciler interface {
	InStockNames(ctx context.Context, userID uuid.UUID) ([]string, error)
	UpsertFromSuggestion(ctx context.Context, userID uuid.UUID, name string) (*domain.PantryItem, error)
}

type macroSource interface {
	RecentAverages(ctx context.Context, userID uuid.UUID, n int) (*domain.NutritionVector, error)
}

type generator interface {
	Generate(ctx context.Context, req domain.PlanRequest) (*domain.GeneratedPlan, error)
}

// Service provides meal-plan operations.
type Service struct {
	plans     planRepo
	profile   profileReader
	pantry    pantryReconciler
	macros    macroSource
	generator generator
	clock     domain.Clock
	metrics   *metrics.Metrics
	cfg       config.MealPlanConfig
	log       *slog.Logger
}

// NewService creates a new meal-plan service. Zero-valued cfg fields fall
// back to the package defaults.
func NewService(
	log *slog.Logger,
	plans planRepo,
	profile profileReader,
	pantry pantryReconciler,
	macros macroSource,
	gen generator,
	clock domain.Clock,
	m *metrics.Metrics,
	cfg config.MealPlanConfig,
) *Service {
	if clock == nil {
		clock = domain.SystemClock
	}
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DefaultPlanTTL
	}
	if cfg.FallbackWeightKg <= 0 {
		cfg.FallbackWeightKg = domain.DefaultWeightKg
	}
	if cfg.DefaultGoal == "" {
		cfg.DefaultGoal = domain.DefaultGoalType
	}
	if cfg.RecentMacroDays <= 0 {
		cfg.RecentMacroDays = 7
	}
	return &Service{
		plans:     plans,
		profile:   profile,
		pantry:    pantry,
		macros:    macros,
		generator: gen,
		clock:     clock,
		metrics:   m,
		cfg:       cfg,
		log:       log.With("service", "mealplan"),
	}
}

// notBefore is the oldest created_at still served at now.
func (s *Service) notBefore() time.Time {
	return s.clock.Now().UTC().Add(-s.cfg.TTL)
}
