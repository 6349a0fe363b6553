// Package profile implements weight, activity and goal persistence using PostgreSQL.
package profile

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

var (
	weightColumns = []string{"id", "user_id", "weight_kg", "measured_at", "created_at"}
	goalColumns   = []string{"user_id", "goal_type", "target_weight_kg", "target_date", "updated_at"}

	activityColumns = []string{"id", "user_id", "type", "steps", "duration_min", "created_at"}
)

const upsertGoalSQL = `
INSERT INTO goals (user_id, goal_type, target_weight_kg, target_date, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
    goal_type        = EXCLUDED.goal_type,
    target_weight_kg = EXCLUDED.target_weight_kg,
    target_date      = EXCLUDED.target_date,
    updated_at       = EXCLUDED.updated_at
RETURNING user_id, goal_type, target_weight_kg, target_date, updated_at`

// Repo provides weight and goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// InsertWeight stores a weight measurement.
func (r *Repo) InsertWeight(ctx context.Context, w *domain.WeightEntry) (*domain.WeightEntry, error) {
	query, args, err := postgres.Builder.
		Insert("weights").
		Columns(weightColumns...).
		Values(w.ID, w.UserID, w.WeightKg, w.MeasuredAt, w.CreatedAt).
		Suffix("RETURNING id, user_id, weight_kg, measured_at, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanWeight(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "weight", w.ID)
	}
	return out, nil
}

// LatestWeight returns the most recently logged weight.
// Returns domain.ErrNotFound when the user has none.
func (r *Repo) LatestWeight(ctx context.Context, userID uuid.UUID) (*domain.WeightEntry, error) {
	weights, err := r.ListWeights(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("weight of user %s: %w", userID, domain.ErrNotFound)
	}
	return &weights[0], nil
}

// ListWeights returns up to limit weights, newest first.
func (r *Repo) ListWeights(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WeightEntry, error) {
	query, args, err := postgres.Builder.
		Select(weightColumns...).
		From("weights").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	defer rows.Close()

	result := make([]domain.WeightEntry, 0)
	for rows.Next() {
		w, err := scanWeight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weight: %w", err)
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weights: %w", err)
	}
	return result, nil
}

// InsertActivity stores a logged activity.
func (r *Repo) InsertActivity(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	query, args, err := postgres.Builder.
		Insert("activities").
		Columns(activityColumns...).
		Values(a.ID, a.UserID, a.Type, a.Steps, a.DurationMin, a.CreatedAt).
		Suffix("RETURNING id, user_id, type, steps, duration_min, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanActivity(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}
	return out, nil
}

// ListActivities returns up to limit activities, newest first.
func (r *Repo) ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Activity, error) {
	query, args, err := postgres.Builder.
		Select(activityColumns...).
		From("activities").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Activity, error) {
		a, err := scanActivity(row)
		if err != nil {
			return domain.Activity{}, err
		}
		return *a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan activities: %w", err)
	}
	return result, nil
}

// UpsertGoal stores the user's single goal, replacing any previous one.
func (r *Repo) UpsertGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertGoalSQL,
		g.UserID, g.GoalType, g.TargetWeightKg, g.TargetDate, g.UpdatedAt,
	)
	out, err := scanGoal(row)
	if err != nil {
		return nil, postgres.MapError(err, "goal", g.UserID)
	}
	return out, nil
}

// GetGoal returns the user's goal. Returns domain.ErrNotFound when none is set.
func (r *Repo) GetGoal(ctx context.Context, userID uuid.UUID) (*domain.Goal, error) {
	query, args, err := postgres.Builder.
		Select(goalColumns...).
		From("goals").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	g, err := scanGoal(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "goal", userID)
	}
	return g, nil
}

func scanWeight(row pgx.Row) (*domain.WeightEntry, error) {
	var w domain.WeightEntry
	if err := row.Scan(&w.ID, &w.UserID, &w.WeightKg, &w.MeasuredAt, &w.CreatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var a domain.Activity
	if err := row.Scan(&a.ID, &a.UserID, &a.Type, &a.Steps, &a.DurationMin, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var g domain.Goal
	if err := row.Scan(&g.UserID, &g.GoalType, &g.TargetWeightKg, &g.TargetDate, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
