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

// SetGoal replaces the user's goal. Omitted optional fields are cleared.
func (s *Service) SetGoal(ctx context.Context, input SetGoalInput) (*domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	g := &domain.Goal{
		UserID:         userID,
		GoalType:       strings.TrimSpace(input.GoalType),
		TargetWeightKg: input.TargetWeightKg,
		UpdatedAt:      s.clock.Now().UTC(),
	}
	if input.TargetDate != "" {
		d, _ := domain.ParseDate("target_date", input.TargetDate)
		g.TargetDate = &d
	}

	out, err := s.repo.UpsertGoal(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("set goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal set",
		slog.String("user_id", userID.String()),
		slog.String("goal_type", out.GoalType),
	)

	return out, nil
}

// GetGoal returns the user's goal. Returns domain.ErrNotFound when none is set.
func (s *Service) GetGoal(ctx context.Context) (*domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	g, err := s.repo.GetGoal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

// CurrentGoalType returns the user's goal type, or ok=false when unset.
func (s *Service) CurrentGoalType(ctx context.Context, userID uuid.UUID) (goalType string, ok bool, err error) {
	g, err := s.repo.GetGoal(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("goal: %w", err)
	}
	return g.GoalType, true, nil
}
