// Package nutrition implements the per-day nutrition totals repository using PostgreSQL.
package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

const entity = "nutrition_totals"

var columns = []string{"user_id", "day", "calories", "protein", "carbs", "fat", "fiber", "updated_at"}

// incrementSQL adds a vector to the (user, day) row in one statement, creating
// the row on first use. Concurrent increments serialize on the row lock taken
// by ON CONFLICT, so no update is lost.
const incrementSQL = `
INSERT INTO nutrition_totals AS t (user_id, day, calories, protein, carbs, fat, fiber, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (user_id, day) DO UPDATE SET
    calories   = t.calories + EXCLUDED.calories,
    protein    = t.protein  + EXCLUDED.protein,
    carbs      = t.carbs    + EXCLUDED.carbs,
    fat        = t.fat      + EXCLUDED.fat,
    fiber      = t.fiber    + EXCLUDED.fiber,
    updated_at = EXCLUDED.updated_at
RETURNING user_id, day, calories, protein, carbs, fat, fiber, updated_at`

// Repo provides nutrition totals persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new nutrition totals repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Increment adds v to the user's totals for day and returns the resulting row.
func (r *Repo) Increment(ctx context.Context, userID uuid.UUID, day time.Time, v domain.NutritionVector) (*domain.NutritionTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, incrementSQL,
		userID, day, v.Calories, v.Protein, v.Carbs, v.Fat, v.Fiber,
	)
	totals, err := scanTotals(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, domain.FormatDate(day))
	}
	return totals, nil
}

// Get returns the totals for one day. Returns domain.ErrNotFound when no meal
// has been recorded that day.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.NutritionTotals, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(entity).
		Where(squirrel.Eq{"user_id": userID, "day": day}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	totals, err := scanTotals(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, domain.FormatDate(day))
	}
	return totals, nil
}

// ListRange returns totals with from <= day < to, oldest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutritionTotals, error) {
	sb := postgres.Builder.
		Select(columns...).
		From(entity).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"day": from}).
		Where(squirrel.Lt{"day": to}).
		OrderBy("day ASC")

	return r.list(ctx, sb)
}

// Recent returns the user's most recent n totals rows, newest first.
func (r *Repo) Recent(ctx context.Context, userID uuid.UUID, n int) ([]domain.NutritionTotals, error) {
	if n <= 0 {
		return []domain.NutritionTotals{}, nil
	}

	sb := postgres.Builder.
		Select(columns...).
		From(entity).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("day DESC").
		Limit(uint64(n))

	return r.list(ctx, sb)
}

func (r *Repo) list(ctx context.Context, sb squirrel.SelectBuilder) ([]domain.NutritionTotals, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", entity, err)
	}
	defer rows.Close()

	result := make([]domain.NutritionTotals, 0)
	for rows.Next() {
		t, err := scanTotals(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", entity, err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", entity, err)
	}
	return result, nil
}

func scanTotals(row pgx.Row) (*domain.NutritionTotals, error) {
	var t domain.NutritionTotals
	err := row.Scan(
		&t.UserID, &t.Day,
		&t.Nutrition.Calories, &t.Nutrition.Protein, &t.Nutrition.Carbs, &t.Nutrition.Fat, &t.Nutrition.Fiber,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Day = domain.DayOf(t.Day)
	return &t, nil
}
