package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

type expiredPlanDeleter interface {
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// PruneMealPlans deletes every plan created at or before now - ttl.
// Reads already hide such plans; pruning only reclaims storage.
func PruneMealPlans(
	ctx context.Context,
	plans expiredPlanDeleter,
	ttl time.Duration,
	now time.Time,
	m *metrics.Metrics,
	logger *slog.Logger,
) (int64, error) {
	if ttl <= 0 {
		ttl = domain.DefaultPlanTTL
	}
	cutoff := now.UTC().Add(-ttl)

	deleted, err := plans.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	m.PlansPruned(deleted)
	logger.InfoContext(ctx, "expired meal plans deleted",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
	return deleted, nil
}

// runPruner calls PruneMealPlans every interval until ctx is done.
func runPruner(
	ctx context.Context,
	plans expiredPlanDeleter,
	ttl, interval time.Duration,
	clock domain.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := PruneMealPlans(ctx, plans, ttl, clock.Now(), m, logger); err != nil && ctx.Err() == nil {
				logger.WarnContext(ctx, "prune meal plans failed", slog.String("error", err.Error()))
			}
		}
	}
}
