package circulation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var _ copyRepo = &copyRepoMock{}

type copyRepoMock struct {
	CreateFunc           func(ctx context.Context, c domain.BookCopy) (*domain.BookCopy, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.BookCopy, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.BookCopy, error)
	ListByBookFunc       func(ctx context.Context, bookID uuid.UUID) ([]domain.BookCopy, error)
	UpdateStateFunc      func(ctx context.Context, c domain.BookCopy) error

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.BookCopy
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByBook []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
		UpdateState []struct {
			Ctx context.Context
			C   domain.BookCopy
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockListByBook       sync.RWMutex
	lockUpdateState      sync.RWMutex
}

func (mock *copyRepoMock) Create(ctx context.Context, c domain.BookCopy) (*domain.BookCopy, error) {
	if mock.CreateFunc == nil {
		panic("copyRepoMock.CreateFunc: method is nil but copyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.BookCopy
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *copyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.BookCopy
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *copyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookCopy, error) {
	if mock.GetByIDFunc == nil {
		panic("copyRepoMock.GetByIDFunc: method is nil but copyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *copyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *copyRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookCopy, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("copyRepoMock.GetByIDForUpdateFunc: method is nil but copyRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *copyRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *copyRepoMock) ListByBook(ctx context.Context, bookID uuid.UUID) ([]domain.BookCopy, error) {
	if mock.ListByBookFunc == nil {
		panic("copyRepoMock.ListByBookFunc: method is nil but copyRepo.ListByBook was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID uuid.UUID
	}{Ctx: ctx, BookID: bookID}
	mock.lockListByBook.Lock()
	mock.calls.ListByBook = append(mock.calls.ListByBook, callInfo)
	mock.lockListByBook.Unlock()
	return mock.ListByBookFunc(ctx, bookID)
}

func (mock *copyRepoMock) ListByBookCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockListByBook.RLock()
	calls := mock.calls.ListByBook
	mock.lockListByBook.RUnlock()
	return calls
}

func (mock *copyRepoMock) UpdateState(ctx context.Context, c domain.BookCopy) error {
	if mock.UpdateStateFunc == nil {
		panic("copyRepoMock.UpdateStateFunc: method is nil but copyRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.BookCopy
	}{Ctx: ctx, C: c}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, c)
}

func (mock *copyRepoMock) UpdateStateCalls() []struct {
	Ctx context.Context
	C   domain.BookCopy
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}
