// Package meal implements the meal record repository using PostgreSQL.
// Ledger rows are append-only; slot rows are upserted per (user, date, meal type).
package meal

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

const entity = "meal"

var columns = []string{"id", "user_id", "meal_type", "description", "eaten_at", "slot_date", "nutrition", "created_at"}

const insertSQL = `
INSERT INTO meals (id, user_id, meal_type, description, eaten_at, slot_date, nutrition, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, user_id, meal_type, description, eaten_at, slot_date, nutrition, created_at`

// upsertSlotSQL relies on the partial unique index ux_meals_user_slot.
// xmax = 0 only for a freshly inserted tuple.
const upsertSlotSQL = `
INSERT INTO meals (id, user_id, meal_type, description, eaten_at, slot_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id, slot_date, meal_type) WHERE slot_date IS NOT NULL
DO UPDATE SET description = EXCLUDED.description
RETURNING id, user_id, meal_type, description, eaten_at, slot_date, nutrition, created_at, (xmax = 0) AS inserted`

// Repo provides meal record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert stores an immutable ledger record and returns it as persisted.
func (r *Repo) Insert(ctx context.Context, m *domain.MealRecord) (*domain.MealRecord, error) {
	nutrition, err := marshalNutrition(m.Nutrition)
	if err != nil {
		return nil, err
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		m.ID, m.UserID, string(m.MealType), m.Description, m.EatenAt, m.SlotDate, nutrition, m.CreatedAt,
	)
	rec, err := scanMeal(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, m.ID)
	}
	return rec, nil
}

// UpsertSlot inserts the slot record for (user, date, meal type) or replaces
// the description of the existing one. created reports which branch ran.
func (r *Repo) UpsertSlot(ctx context.Context, m *domain.MealRecord) (rec *domain.MealRecord, created bool, err error) {
	if m.SlotDate == nil {
		return nil, false, fmt.Errorf("upsert slot: slot date is required")
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSlotSQL,
		m.ID, m.UserID, string(m.MealType), m.Description, m.EatenAt, *m.SlotDate, m.CreatedAt,
	)

	var raw []byte
	var out domain.MealRecord
	var mealType string
	err = row.Scan(&out.ID, &out.UserID, &mealType, &out.Description, &out.EatenAt, &out.SlotDate, &raw, &out.CreatedAt, &created)
	if err != nil {
		return nil, false, postgres.MapError(err, entity, domain.FormatDate(*m.SlotDate)+"/"+string(m.MealType))
	}
	out.MealType = domain.MealType(mealType)
	if out.Nutrition, err = unmarshalNutrition(raw); err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// ListEatenBetween returns the user's meals with from <= eaten_at < to,
// ordered by eaten_at then created_at.
func (r *Repo) ListEatenBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MealRecord, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("meals").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"eaten_at": from}).
		Where(squirrel.Lt{"eaten_at": to}).
		OrderBy("eaten_at ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	result := make([]domain.MealRecord, 0)
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return result, nil
}

func scanMeal(row pgx.Row) (*domain.MealRecord, error) {
	var (
		m        domain.MealRecord
		mealType string
		raw      []byte
	)
	if err := row.Scan(&m.ID, &m.UserID, &mealType, &m.Description, &m.EatenAt, &m.SlotDate, &raw, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.MealType = domain.MealType(mealType)

	var err error
	if m.Nutrition, err = unmarshalNutrition(raw); err != nil {
		return nil, err
	}
	return &m, nil
}

func marshalNutrition(v *domain.NutritionVector) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal nutrition: %w", err)
	}
	return raw, nil
}

func unmarshalNutrition(raw []byte) (*domain.NutritionVector, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v domain.NutritionVector
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("unmarshal nutrition: %w", err)
	}
	return &v, nil
}
