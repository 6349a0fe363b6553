package pantry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
)

var (
	_ pantryRepo = &pantryRepoMock{}
	_ txManager  = &txManagerMock{}
)

type pantryRepoMock struct {
	ListFunc         func(ctx context.Context, userID uuid.UUID, status *domain.PantryStatus) ([]domain.PantryItem, error)
	LockByNameFunc   func(ctx context.Context, userID uuid.UUID, normalizedName string) ([]domain.PantryItem, error)
	InStockNamesFunc func(ctx context.Context, userID uuid.UUID) ([]string, error)
	InsertFunc       func(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error)
	UpsertToBuyFunc  func(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error)
	MarkToBuyFunc    func(ctx context.Context, userID, itemID uuid.UUID, name string, createdAt time.Time) (*domain.PantryItem, error)
	UpdateStatusFunc func(ctx context.Context, userID, itemID uuid.UUID, status domain.PantryStatus) (*domain.PantryItem, error)
	DeleteFunc       func(ctx context.Context, userID, itemID uuid.UUID) error
	DeleteByIDsFunc  func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	calls struct {
		List []struct {
			UserID uuid.UUID
			Status *domain.PantryStatus
		}
		LockByName []struct {
			UserID         uuid.UUID
			NormalizedName string
		}
		InStockNames []struct {
			UserID uuid.UUID
		}
		Insert []struct {
			Item *domain.PantryItem
		}
		UpsertToBuy []struct {
			Item *domain.PantryItem
		}
		MarkToBuy []struct {
			UserID    uuid.UUID
			ItemID    uuid.UUID
			Name      string
			CreatedAt time.Time
		}
		UpdateStatus []struct {
			UserID uuid.UUID
			ItemID uuid.UUID
			Status domain.PantryStatus
		}
		Delete []struct {
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		DeleteByIDs []struct {
			UserID uuid.UUID
			IDs    []uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *pantryRepoMock) List(ctx context.Context, userID uuid.UUID, status *domain.PantryStatus) ([]domain.PantryItem, error) {
	if mock.ListFunc == nil {
		panic("pantryRepoMock.ListFunc: method is nil but pantryRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID uuid.UUID
		Status *domain.PantryStatus
	}{userID, status})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID, status)
}

func (mock *pantryRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Status *domain.PantryStatus
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *pantryRepoMock) LockByName(ctx context.Context, userID uuid.UUID, normalizedName string) ([]domain.PantryItem, error) {
	if mock.LockByNameFunc == nil {
		panic("pantryRepoMock.LockByNameFunc: method is nil but pantryRepo.LockByName was just called")
	}
	mock.lock.Lock()
	mock.calls.LockByName = append(mock.calls.LockByName, struct {
		UserID         uuid.UUID
		NormalizedName string
	}{userID, normalizedName})
	mock.lock.Unlock()
	return mock.LockByNameFunc(ctx, userID, normalizedName)
}

func (mock *pantryRepoMock) LockByNameCalls() []struct {
	UserID         uuid.UUID
	NormalizedName string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.LockByName
}

func (mock *pantryRepoMock) InStockNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if mock.InStockNamesFunc == nil {
		panic("pantryRepoMock.InStockNamesFunc: method is nil but pantryRepo.InStockNames was just called")
	}
	mock.lock.Lock()
	mock.calls.InStockNames = append(mock.calls.InStockNames, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.InStockNamesFunc(ctx, userID)
}

func (mock *pantryRepoMock) Insert(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error) {
	if mock.InsertFunc == nil {
		panic("pantryRepoMock.InsertFunc: method is nil but pantryRepo.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct{ Item *domain.PantryItem }{item})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, item)
}

func (mock *pantryRepoMock) InsertCalls() []struct{ Item *domain.PantryItem } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

func (mock *pantryRepoMock) UpsertToBuy(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error) {
	if mock.UpsertToBuyFunc == nil {
		panic("pantryRepoMock.UpsertToBuyFunc: method is nil but pantryRepo.UpsertToBuy was just called")
	}
	mock.lock.Lock()
	mock.calls.UpsertToBuy = append(mock.calls.UpsertToBuy, struct{ Item *domain.PantryItem }{item})
	mock.lock.Unlock()
	return mock.UpsertToBuyFunc(ctx, item)
}

func (mock *pantryRepoMock) UpsertToBuyCalls() []struct{ Item *domain.PantryItem } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpsertToBuy
}

func (mock *pantryRepoMock) MarkToBuy(ctx context.Context, userID, itemID uuid.UUID, name string, createdAt time.Time) (*domain.PantryItem, error) {
	if mock.MarkToBuyFunc == nil {
		panic("pantryRepoMock.MarkToBuyFunc: method is nil but pantryRepo.MarkToBuy was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkToBuy = append(mock.calls.MarkToBuy, struct {
		UserID    uuid.UUID
		ItemID    uuid.UUID
		Name      string
		CreatedAt time.Time
	}{userID, itemID, name, createdAt})
	mock.lock.Unlock()
	return mock.MarkToBuyFunc(ctx, userID, itemID, name, createdAt)
}

func (mock *pantryRepoMock) MarkToBuyCalls() []struct {
	UserID    uuid.UUID
	ItemID    uuid.UUID
	Name      string
	CreatedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkToBuy
}

func (mock *pantryRepoMock) UpdateStatus(ctx context.Context, userID, itemID uuid.UUID, status domain.PantryStatus) (*domain.PantryItem, error) {
	if mock.UpdateStatusFunc == nil {
		panic("pantryRepoMock.UpdateStatusFunc: method is nil but pantryRepo.UpdateStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		UserID uuid.UUID
		ItemID uuid.UUID
		Status domain.PantryStatus
	}{userID, itemID, status})
	mock.lock.Unlock()
	return mock.UpdateStatusFunc(ctx, userID, itemID, status)
}

func (mock *pantryRepoMock) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("pantryRepoMock.DeleteFunc: method is nil but pantryRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		ItemID uuid.UUID
	}{userID, itemID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, itemID)
}

func (mock *pantryRepoMock) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("pantryRepoMock.DeleteByIDsFunc: method is nil but pantryRepo.DeleteByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, struct {
		UserID uuid.UUID
		IDs    []uuid.UUID
	}{userID, ids})
	mock.lock.Unlock()
	return mock.DeleteByIDsFunc(ctx, userID, ids)
}

func (mock *pantryRepoMock) DeleteByIDsCalls() []struct {
	UserID uuid.UUID
	IDs    []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByIDs
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
