package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	CreateBookFunc func(ctx context.Context, input catalog.CreateBookInput) (*domain.Book, error)
	GetBookFunc    func(ctx context.Context, input catalog.GetBookInput) (*domain.Book, error)
	ListBooksFunc  func(ctx context.Context) ([]domain.Book, error)

	calls struct {
		CreateBook []struct {
			Ctx   context.Context
			Input catalog.CreateBookInput
		}
		GetBook []struct {
			Ctx   context.Context
			Input catalog.GetBookInput
		}
		ListBooks []struct {
			Ctx context.Context
		}
	}
	lockCreateBook sync.RWMutex
	lockGetBook    sync.RWMutex
	lockListBooks  sync.RWMutex
}

func (mock *catalogServiceMock) CreateBook(ctx context.Context, input catalog.CreateBookInput) (*domain.Book, error) {
	if mock.CreateBookFunc == nil {
		panic("catalogServiceMock.CreateBookFunc: method is nil but catalogService.CreateBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateBookInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateBook.Lock()
	mock.calls.CreateBook = append(mock.calls.CreateBook, callInfo)
	mock.lockCreateBook.Unlock()
	return mock.CreateBookFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateBookCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateBookInput
} {
	mock.lockCreateBook.RLock()
	calls := mock.calls.CreateBook
	mock.lockCreateBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetBook(ctx context.Context, input catalog.GetBookInput) (*domain.Book, error) {
	if mock.GetBookFunc == nil {
		panic("catalogServiceMock.GetBookFunc: method is nil but catalogService.GetBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.GetBookInput
	}{Ctx: ctx, Input: input}
	mock.lockGetBook.Lock()
	mock.calls.GetBook = append(mock.calls.GetBook, callInfo)
	mock.lockGetBook.Unlock()
	return mock.GetBookFunc(ctx, input)
}

func (mock *catalogServiceMock) GetBookCalls() []struct {
	Ctx   context.Context
	Input catalog.GetBookInput
} {
	mock.lockGetBook.RLock()
	calls := mock.calls.GetBook
	mock.lockGetBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListBooks(ctx context.Context) ([]domain.Book, error) {
	if mock.ListBooksFunc == nil {
		panic("catalogServiceMock.ListBooksFunc: method is nil but catalogService.ListBooks was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListBooks.Lock()
	mock.calls.ListBooks = append(mock.calls.ListBooks, callInfo)
	mock.lockListBooks.Unlock()
	return mock.ListBooksFunc(ctx)
}

func (mock *catalogServiceMock) ListBooksCalls() []struct {
	Ctx context.Context
} {
	mock.lockListBooks.RLock()
	calls := mock.calls.ListBooks
	mock.lockListBooks.RUnlock()
	return calls
}
