package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/pkg/ctxutil"
)

// LogActivity appends an activity to the user's log.
func (s *Service) LogActivity(ctx context.Context, input LogActivityInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.InsertActivity(ctx, &domain.Activity{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        strings.TrimSpace(input.Type),
		Steps:       input.Steps,
		DurationMin: input.DurationMin,
		CreatedAt:   s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("log activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity logged",
		slog.String("user_id", userID.String()),
		slog.String("type", a.Type),
	)

	return a, nil
}

// ListActivities returns the user's activities, newest first.
func (s *Service) ListActivities(ctx context.Context, input ListActivitiesInput) ([]domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultActivitiesLimit
	}

	activities, err := s.repo.ListActivities(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
