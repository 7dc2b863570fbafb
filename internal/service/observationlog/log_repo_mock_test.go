package observationlog

import (
	"context"
	"sync"

	"github.com/TGiulio/nightlog/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc     func(ctx context.Context, l *domain.Log) (*domain.Log, error)
	DeleteFunc     func(ctx context.Context, id string, ownerID string) error
	GetByIDFunc    func(ctx context.Context, id string, ownerID string) (*domain.Log, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Log, error)
	UpdateFunc     func(ctx context.Context, id string, ownerID string, l *domain.Log) (*domain.Log, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.Log
		}
		Delete []struct {
			Ctx     context.Context
			ID      string
			OwnerID string
		}
		GetByID []struct {
			Ctx     context.Context
			ID      string
			OwnerID string
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID string
		}
		Update []struct {
			Ctx     context.Context
			ID      string
			OwnerID string
			L       *domain.Log
		}
	}
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, l *domain.Log) (*domain.Log, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Log
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.Log
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) Delete(ctx context.Context, id string, ownerID string) error {
	if mock.DeleteFunc == nil {
		panic("logRepoMock.DeleteFunc: method is nil but logRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      string
		OwnerID string
	}{Ctx: ctx, ID: id, OwnerID: ownerID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, ownerID)
}

func (mock *logRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	ID      string
	OwnerID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *logRepoMock) GetByID(ctx context.Context, id string, ownerID string) (*domain.Log, error) {
	if mock.GetByIDFunc == nil {
		panic("logRepoMock.GetByIDFunc: method is nil but logRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      string
		OwnerID string
	}{Ctx: ctx, ID: id, OwnerID: ownerID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id, ownerID)
}

func (mock *logRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	ID      string
	OwnerID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *logRepoMock) ListByUser(ctx context.Context, userID string) ([]*domain.Log, error) {
	if mock.ListByUserFunc == nil {
		panic("logRepoMock.ListByUserFunc: method is nil but logRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *logRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *logRepoMock) Update(ctx context.Context, id string, ownerID string, l *domain.Log) (*domain.Log, error) {
	if mock.UpdateFunc == nil {
		panic("logRepoMock.UpdateFunc: method is nil but logRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      string
		OwnerID string
		L       *domain.Log
	}{Ctx: ctx, ID: id, OwnerID: ownerID, L: l}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, ownerID, l)
}

func (mock *logRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	ID      string
	OwnerID string
	L       *domain.Log
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
