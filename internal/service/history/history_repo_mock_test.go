package history

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	ListAllFunc    func(ctx context.Context) ([]domain.BookIssueHistory, error)
	ListByBookFunc func(ctx context.Context, bookID uuid.UUID) ([]domain.BookIssueHistory, error)
	ListByCopyFunc func(ctx context.Context, copyID uuid.UUID) ([]domain.BookIssueHistory, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
		ListByBook []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
		ListByCopy []struct {
			Ctx    context.Context
			CopyID uuid.UUID
		}
	}
	lockListAll    sync.RWMutex
	lockListByBook sync.RWMutex
	lockListByCopy sync.RWMutex
}

func (mock *historyRepoMock) ListAll(ctx context.Context) ([]domain.BookIssueHistory, error) {
	if mock.ListAllFunc == nil {
		panic("historyRepoMock.ListAllFunc: method is nil but historyRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *historyRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListByBook(ctx context.Context, bookID uuid.UUID) ([]domain.BookIssueHistory, error) {
	if mock.ListByBookFunc == nil {
		panic("historyRepoMock.ListByBookFunc: method is nil but historyRepo.ListByBook was just called")
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

func (mock *historyRepoMock) ListByBookCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockListByBook.RLock()
	calls := mock.calls.ListByBook
	mock.lockListByBook.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListByCopy(ctx context.Context, copyID uuid.UUID) ([]domain.BookIssueHistory, error) {
	if mock.ListByCopyFunc == nil {
		panic("historyRepoMock.ListByCopyFunc: method is nil but historyRepo.ListByCopy was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CopyID uuid.UUID
	}{Ctx: ctx, CopyID: copyID}
	mock.lockListByCopy.Lock()
	mock.calls.ListByCopy = append(mock.calls.ListByCopy, callInfo)
	mock.lockListByCopy.Unlock()
	return mock.ListByCopyFunc(ctx, copyID)
}

func (mock *historyRepoMock) ListByCopyCalls() []struct {
	Ctx    context.Context
	CopyID uuid.UUID
} {
	mock.lockListByCopy.RLock()
	calls := mock.calls.ListByCopy
	mock.lockListByCopy.RUnlock()
	return calls
}
