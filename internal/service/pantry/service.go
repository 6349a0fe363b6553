// Package pantry manages a user's grocery items. Manual additions dedupe on
// (name, status); shopping-list suggestions dedupe on name alone.
package pantry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

type pantryRepo interface {
	List(ctx context.Context, userID uuid.UUID, status *domain.PantryStatus) ([]domain.PantryItem, error)
	LockByName(ctx context.Context, userID uuid.UUID, normalizedName string) ([]domain.PantryItem, error)
	InStockNames(ctx context.Context, userID uuid.UUID) ([]string, error)
	Insert(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error)
	UpsertToBuy(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error)
	MarkToBuy(ctx context.Context, userID, itemID uuid.UUID, name string, createdAt time.Time) (*domain.PantryItem, error)
	UpdateStatus(ctx context.Context, userID, itemID uuid.UUID, status domain.PantryStatus) (*domain.PantryItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides pantry operations.
type Service struct {
	items   pantryRepo
	tx      txManager
	clock   domain.Clock
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewService creates a new pantry service.
func NewService(log *slog.Logger, items pantryRepo, tx txManager, clock domain.Clock, m *metrics.Metrics) *Service {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &Service{
		items:   items,
		tx:      tx,
		clock:   clock,
		metrics: m,
		log:     log.With("service", "pantry"),
	}
}

// asConflict turns a storage unique violation into domain.ErrConflict.
func asConflict(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return err
}
