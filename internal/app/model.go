package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/pebbl-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/pebbl-backend/internal/config"
	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

// Model estimates meal nutrition and generates meal plans.
type Model interface {
	Estimate(ctx context.Context, description string) (domain.NutritionVector, error)
	Generate(ctx context.Context, req domain.PlanRequest) (*domain.GeneratedPlan, error)
}

type model struct {
	*llm.Estimator
	*llm.Generator
}

// NewModel returns the offline stub for the "stub" provider, otherwise an
// estimator and generator sharing one completer.
func NewModel(cfg config.LLMConfig, m *metrics.Metrics, logger *slog.Logger) (Model, error) {
	if cfg.ProviderName() == config.LLMProviderStub {
		logger.Warn("using stub language model: estimates are zero and plans are fixed")
		return llm.NewStub(), nil
	}

	c, err := llm.NewCompleter(cfg)
	if err != nil {
		return nil, err
	}
	return model{
		Estimator: llm.NewEstimator(c, cfg.Timeout, m, logger),
		Generator: llm.NewGenerator(c, cfg.Timeout, m, logger),
	}, nil
}
