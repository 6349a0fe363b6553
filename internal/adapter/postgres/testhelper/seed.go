package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

// Now returns the current UTC time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedPantryItem inserts a pantry item directly, bypassing the repository.
func SeedPantryItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, status domain.PantryStatus) domain.PantryItem {
	t.Helper()

	item := domain.PantryItem{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		NormalizedName: domain.NormalizeName(name),
		Status:         status,
		CreatedAt:      Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pantry_items (id, user_id, name, normalized_name, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.UserID, item.Name, item.NormalizedName, string(item.Status), item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPantryItem: %v", err)
	}
	return item
}

// SeedMealPlan inserts a meal plan with an explicit created_at so tests can
// place it before or after the expiry boundary.
func SeedMealPlan(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, weekStart string, createdAt time.Time, meals []domain.PlannedMeal) domain.MealPlan {
	t.Helper()

	day, err := time.Parse(domain.DateLayout, weekStart)
	if err != nil {
		t.Fatalf("testhelper: SeedMealPlan week start: %v", err)
	}
	raw, err := json.Marshal(meals)
	if err != nil {
		t.Fatalf("testhelper: SeedMealPlan marshal meals: %v", err)
	}

	plan := domain.MealPlan{
		ID:        uuid.New(),
		UserID:    userID,
		WeekStart: weekStart,
		Meals:     meals,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO meal_plans (id, user_id, week_start, meals, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		plan.ID, plan.UserID, day, raw, plan.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMealPlan: %v", err)
	}
	return plan
}

// CountPantryRows returns the number of pantry rows for (user, normalized name)
// across all statuses.
func CountPantryRows(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, normalizedName string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM pantry_items WHERE user_id = $1 AND normalized_name = $2`,
		userID, normalizedName,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountPantryRows: %v", err)
	}
	return n
}
