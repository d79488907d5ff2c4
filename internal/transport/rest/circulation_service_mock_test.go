package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/circulation"
)

var _ circulationService = &circulationServiceMock{}

type circulationServiceMock struct {
	RegisterCopyFunc func(ctx context.Context, input circulation.RegisterCopyInput) (*domain.BookCopy, error)
	ListCopiesFunc   func(ctx context.Context, bookID uuid.UUID) ([]domain.BookCopy, error)
	GetCopyFunc      func(ctx context.Context, copyID uuid.UUID) (*domain.BookCopy, error)
	IssueCopyFunc    func(ctx context.Context, input circulation.IssueCopyInput) (*domain.BookCopy, error)
	ReturnCopyFunc   func(ctx context.Context, copyID uuid.UUID) (string, error)

	calls struct {
		RegisterCopy []struct {
			Ctx   context.Context
			Input circulation.RegisterCopyInput
		}
		ListCopies []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
		GetCopy []struct {
			Ctx    context.Context
			CopyID uuid.UUID
		}
		IssueCopy []struct {
			Ctx   context.Context
			Input circulation.IssueCopyInput
		}
		ReturnCopy []struct {
			Ctx    context.Context
			CopyID uuid.UUID
		}
	}
	lockRegisterCopy sync.RWMutex
	lockListCopies   sync.RWMutex
	lockGetCopy      sync.RWMutex
	lockIssueCopy    sync.RWMutex
	lockReturnCopy   sync.RWMutex
}

func (mock *circulationServiceMock) RegisterCopy(ctx context.Context, input circulation.RegisterCopyInput) (*domain.BookCopy, error) {
	if mock.RegisterCopyFunc == nil {
		panic("circulationServiceMock.RegisterCopyFunc: method is nil but circulationService.RegisterCopy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input circulation.RegisterCopyInput
	}{Ctx: ctx, Input: input}
	mock.lockRegisterCopy.Lock()
	mock.calls.RegisterCopy = append(mock.calls.RegisterCopy, callInfo)
	mock.lockRegisterCopy.Unlock()
	return mock.RegisterCopyFunc(ctx, input)
}

func (mock *circulationServiceMock) RegisterCopyCalls() []struct {
	Ctx   context.Context
	Input circulation.RegisterCopyInput
} {
	mock.lockRegisterCopy.RLock()
	calls := mock.calls.RegisterCopy
	mock.lockRegisterCopy.RUnlock()
	return calls
}

func (mock *circulationServiceMock) ListCopies(ctx context.Context, bookID uuid.UUID) ([]domain.BookCopy, error) {
	if mock.ListCopiesFunc == nil {
		panic("circulationServiceMock.ListCopiesFunc: method is nil but circulationService.ListCopies was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID uuid.UUID
	}{Ctx: ctx, BookID: bookID}
	mock.lockListCopies.Lock()
	mock.calls.ListCopies = append(mock.calls.ListCopies, callInfo)
	mock.lockListCopies.Unlock()
	return mock.ListCopiesFunc(ctx, bookID)
}

func (mock *circulationServiceMock) ListCopiesCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockListCopies.RLock()
	calls := mock.calls.ListCopies
	mock.lockListCopies.RUnlock()
	return calls
}

func (mock *circulationServiceMock) GetCopy(ctx context.Context, copyID uuid.UUID) (*domain.BookCopy, error) {
	if mock.GetCopyFunc == nil {
		panic("circulationServiceMock.GetCopyFunc: method is nil but circulationService.GetCopy was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CopyID uuid.UUID
	}{Ctx: ctx, CopyID: copyID}
	mock.lockGetCopy.Lock()
	mock.calls.GetCopy = append(mock.calls.GetCopy, callInfo)
	mock.lockGetCopy.Unlock()
	return mock.GetCopyFunc(ctx, copyID)
}

func (mock *circulationServiceMock) GetCopyCalls() []struct {
	Ctx    context.Context
	CopyID uuid.UUID
} {
	mock.lockGetCopy.RLock()
	calls := mock.calls.GetCopy
	mock.lockGetCopy.RUnlock()
	return calls
}

func (mock *circulationServiceMock) IssueCopy(ctx context.Context, input circulation.IssueCopyInput) (*domain.BookCopy, error) {
	if mock.IssueCopyFunc == nil {
		panic("circulationServiceMock.IssueCopyFunc: method is nil but circulationService.IssueCopy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input circulation.IssueCopyInput
	}{Ctx: ctx, Input: input}
	mock.lockIssueCopy.Lock()
	mock.calls.IssueCopy = append(mock.calls.IssueCopy, callInfo)
	mock.lockIssueCopy.Unlock()
	return mock.IssueCopyFunc(ctx, input)
}

func (mock *circulationServiceMock) IssueCopyCalls() []struct {
	Ctx   context.Context
	Input circulation.IssueCopyInput
} {
	mock.lockIssueCopy.RLock()
	calls := mock.calls.IssueCopy
	mock.lockIssueCopy.RUnlock()
	return calls
}

func (mock *circulationServiceMock) ReturnCopy(ctx context.Context, copyID uuid.UUID) (string, error) {
	if mock.ReturnCopyFunc == nil {
		panic("circulationServiceMock.ReturnCopyFunc: method is nil but circulationService.ReturnCopy was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CopyID uuid.UUID
	}{Ctx: ctx, CopyID: copyID}
	mock.lockReturnCopy.Lock()
	mock.calls.ReturnCopy = append(mock.calls.ReturnCopy, callInfo)
	mock.lockReturnCopy.Unlock()
	return mock.ReturnCopyFunc(ctx, copyID)
}

func (mock *circulationServiceMock) ReturnCopyCalls() []struct {
	Ctx    context.Context
	CopyID uuid.UUID
} {
	mock.lockReturnCopy.RLock()
	calls := mock.calls.ReturnCopy
	mock.lockReturnCopy.RUnlock()
	return calls
}
