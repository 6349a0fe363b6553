// Package pantry implements the pantry item repository using PostgreSQL.
package pantry

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

const (
	entity = "pantry_item"
	table  = "pantry_items"
)

var columns = []string{"id", "user_id", "name", "normalized_name", "status", "created_at"}

const returning = "RETURNING id, user_id, name, normalized_name, status, created_at"

// upsertToBuySQL converges concurrent first-time suggestions on one row.
const upsertToBuySQL = `
INSERT INTO pantry_items (id, user_id, name, normalized_name, status, created_at)
VALUES ($1, $2, $3, $4, 'to_buy', $5)
ON CONFLICT (user_id, normalized_name, status) DO UPDATE SET
    name       = EXCLUDED.name,
    created_at = EXCLUDED.created_at
` + returning

// Repo provides pantry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new pantry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the user's items ordered by (created_at, id). A nil status
// returns items of every status.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, status *domain.PantryStatus) ([]domain.PantryItem, error) {
	sb := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC")
	if status != nil {
		sb = sb.Where(squirrel.Eq{"status": string(*status)})
	}

	return r.list(ctx, sb)
}

// LockByName selects and row-locks every item of the user with the given
// normalized name regardless of status. Must run inside a transaction.
func (r *Repo) LockByName(ctx context.Context, userID uuid.UUID, normalizedName string) ([]domain.PantryItem, error) {
	sb := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "normalized_name": normalizedName}).
		OrderBy("created_at ASC", "id ASC").
		Suffix("FOR UPDATE")

	return r.list(ctx, sb)
}

// InStockNames returns display names of in-stock items, oldest first.
func (r *Repo) InStockNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query, args, err := postgres.Builder.
		Select("name").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": string(domain.PantryStatusInStock)}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list in-stock names: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect in-stock names: %w", err)
	}
	return names, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores a new item. Returns domain.ErrAlreadyExists when the user
// already has an item with the same normalized name and status.
func (r *Repo) Insert(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(item.ID, item.UserID, item.Name, item.NormalizedName, string(item.Status), item.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, item.NormalizedName)
	}
	return out, nil
}

// UpsertToBuy inserts a to_buy item, or refreshes the existing to_buy row
// with the same normalized name.
func (r *Repo) UpsertToBuy(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertToBuySQL,
		item.ID, item.UserID, item.Name, item.NormalizedName, item.CreatedAt,
	)
	out, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, item.NormalizedName)
	}
	return out, nil
}

// MarkToBuy moves an item to to_buy, replacing its display name and created_at.
func (r *Repo) MarkToBuy(ctx context.Context, userID, itemID uuid.UUID, name string, createdAt time.Time) (*domain.PantryItem, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("status", string(domain.PantryStatusToBuy)).
		Set("name", name).
		Set("created_at", createdAt).
		Where(squirrel.Eq{"id": itemID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, itemID)
	}
	return out, nil
}

// UpdateStatus changes the status of one item. Returns domain.ErrNotFound when
// the item is absent and domain.ErrAlreadyExists when the target status
// already holds the same name.
func (r *Repo) UpdateStatus(ctx context.Context, userID, itemID uuid.UUID, status domain.PantryStatus) (*domain.PantryItem, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": itemID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, itemID)
	}
	return out, nil
}

// Delete removes one item. Returns domain.ErrNotFound when nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	n, err := r.DeleteByIDs(ctx, userID, []uuid.UUID{itemID})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, itemID, domain.ErrNotFound)
	}
	return nil
}

// DeleteByIDs removes the given items of the user and returns how many rows went away.
func (r *Repo) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"user_id": userID, "id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) list(ctx context.Context, sb squirrel.SelectBuilder) ([]domain.PantryItem, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	items := make([]domain.PantryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", entity, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*domain.PantryItem, error) {
	var (
		item   domain.PantryItem
		status string
	)
	if err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.NormalizedName, &status, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.Status = domain.PantryStatus(status)
	return &item, nil
}
