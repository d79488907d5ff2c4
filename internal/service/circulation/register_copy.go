package circulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// RegisterCopy creates an AVAILABLE copy of an existing book.
// Returns domain.ErrNotFound when the book is unknown and
// domain.ErrAlreadyExists when copyCode or barcode is taken.
func (s *Service) RegisterCopy(ctx context.Context, input RegisterCopyInput) (_ *domain.BookCopy, err error) {
	start := time.Now()
	defer func() { s.observe("register", start, err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.books.GetByID(ctx, input.BookID); err != nil {
		return nil, fmt.Errorf("register copy: %w", err)
	}

	c := domain.NewBookCopy(
		input.BookID,
		domain.NormalizeCode(input.CopyCode),
		domain.NormalizeOptional(input.Barcode, domain.NormalizeCode),
		domain.NormalizeOptional(input.RackLocation, domain.NormalizeText),
		s.now(),
	)

	created, err := s.copies.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("register copy: %w", err)
	}

	s.log.InfoContext(ctx, "book copy registered",
		slog.String("book_id", created.BookID.String()),
		slog.String("copy_id", created.ID.String()),
		slog.String("copy_code", created.CopyCode),
	)

	return created, nil
}

// ListCopies returns all copies of a book. An unknown book yields an empty
// slice, not an error.
func (s *Service) ListCopies(ctx context.Context, bookID uuid.UUID) ([]domain.BookCopy, error) {
	copies, err := s.copies.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list copies: %w", err)
	}
	if copies == nil {
		copies = []domain.BookCopy{}
	}
	return copies, nil
}

// GetCopy returns one copy. Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetCopy(ctx context.Context, copyID uuid.UUID) (*domain.BookCopy, error) {
	c, err := s.copies.GetByID(ctx, copyID)
	if err != nil {
		return nil, fmt.Errorf("get copy: %w", err)
	}
	return c, nil
}
