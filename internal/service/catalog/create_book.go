package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// CreateBook registers a new book.
func (s *Service) CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	book, err := s.books.Create(ctx, domain.Book{
		ID:        uuid.New(),
		Title:     domain.NormalizeText(input.Title),
		Author:    domain.NormalizeText(input.Author),
		ISBN:      domain.NormalizeOptional(input.ISBN, domain.NormalizeCode),
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.log.InfoContext(ctx, "book created",
		slog.String("book_id", book.ID.String()),
		slog.String("title", book.Title),
	)

	return book, nil
}
