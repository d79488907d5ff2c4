package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// GetBook returns one book. Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetBook(ctx context.Context, input GetBookInput) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, input.BookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// ListBooks returns every book; an empty catalog yields an empty slice.
func (s *Service) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, nil
}
