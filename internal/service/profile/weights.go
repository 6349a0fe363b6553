package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// LogWeight appends a weight measurement.
func (s *Service) LogWeight(ctx context.Context, input LogWeightInput) (*domain.WeightEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.repo.InsertWeight(ctx, &domain.WeightEntry{
		ID:         uuid.New(),
		UserID:     userID,
		WeightKg:   input.WeightKg,
		MeasuredAt: strings.TrimSpace(input.MeasuredAt),
		CreatedAt:  s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("log weight: %w", err)
	}

	s.log.InfoContext(ctx, "weight logged",
		slog.String("user_id", userID.String()),
		slog.Float64("weight_kg", w.WeightKg),
	)

	return w, nil
}

// ListWeights returns the user's weights, newest first.
func (s *Service) ListWeights(ctx context.Context, input ListWeightsInput) ([]domain.WeightEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultWeightsLimit
	}

	weights, err := s.repo.ListWeights(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	return weights, nil
}

// CurrentWeight returns the latest logged weight in kg, or ok=false when the
// user has never logged one.
func (s *Service) CurrentWeight(ctx context.Context, userID uuid.UUID) (kg float64, ok bool, err error) {
	w, err := s.repo.LatestWeight(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("latest weight: %w", err)
	}
	return w.WeightKg, true, nil
}
