// Package mealplan implements the weekly meal plan repository using PostgreSQL.
// The table has no native TTL: reads filter on created_at and expired rows
// are pruned by DeleteExpired.
package mealplan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

const (
	entity = "meal_plan"
	table  = "meal_plans"
)

var columns = []string{"id", "user_id", "week_start", "meals", "created_at"}

// upsertSQL replaces meals and created_at of the (user, week) plan while
// keeping its id.
const upsertSQL = `
INSERT INTO meal_plans (id, user_id, week_start, meals, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, week_start) DO UPDATE SET
    meals      = EXCLUDED.meals,
    created_at = EXCLUDED.created_at
RETURNING id, user_id, week_start, meals, created_at`

// Repo provides meal plan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meal plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert stores plan as the user's only plan for its week, fully replacing
// any previous one.
func (r *Repo) Upsert(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error) {
	weekStart, err := domain.ParseDate("week_start", plan.WeekStart)
	if err != nil {
		return nil, err
	}
	meals, err := marshalMeals(plan.Meals)
	if err != nil {
		return nil, err
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSQL,
		plan.ID, plan.UserID, weekStart, meals, plan.CreatedAt,
	)
	out, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, plan.WeekStart)
	}
	return out, nil
}

// GetLive returns the plan for the week if it was created after notBefore.
// Returns domain.ErrNotFound for both missing and expired plans.
func (r *Repo) GetLive(ctx context.Context, userID uuid.UUID, weekStart string, notBefore time.Time) (*domain.MealPlan, error) {
	day, err := domain.ParseDate("week_start", weekStart)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "week_start": day}).
		Where(squirrel.Gt{"created_at": notBefore}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	plan, err := scanPlan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, weekStart)
	}
	return plan, nil
}

// UpdateMeals replaces the meals of a live plan owned by the user.
// created_at is left unchanged, so editing does not extend the lifetime.
func (r *Repo) UpdateMeals(ctx context.Context, userID, planID uuid.UUID, meals []domain.PlannedMeal, notBefore time.Time) (*domain.MealPlan, error) {
	raw, err := marshalMeals(meals)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Update(table).
		Set("meals", raw).
		Where(squirrel.Eq{"id": planID, "user_id": userID}).
		Where(squirrel.Gt{"created_at": notBefore}).
		Suffix("RETURNING id, user_id, week_start, meals, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	plan, err := scanPlan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, planID)
	}
	return plan, nil
}

// DeleteExpired removes every plan created at or before cutoff.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.LtOrEq{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}

func scanPlan(row pgx.Row) (*domain.MealPlan, error) {
	var (
		p         domain.MealPlan
		weekStart time.Time
		raw       []byte
	)
	if err := row.Scan(&p.ID, &p.UserID, &weekStart, &raw, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.WeekStart = domain.FormatDate(weekStart)

	p.Meals = make([]domain.PlannedMeal, 0)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p.Meals); err != nil {
			return nil, fmt.Errorf("unmarshal meals: %w", err)
		}
	}
	return &p, nil
}

func marshalMeals(meals []domain.PlannedMeal) ([]byte, error) {
	if meals == nil {
		meals = []domain.PlannedMeal{}
	}
	raw, err := json.Marshal(meals)
	if err != nil {
		return nil, fmt.Errorf("marshal meals: %w", err)
	}
	return raw, nil
}
