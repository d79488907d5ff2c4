package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// ListAll returns every issue record ordered by issue time.
func (s *Service) ListAll(ctx context.Context) ([]domain.BookIssueHistory, error) {
	records, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list issue history: %w", err)
	}
	return orEmpty(records), nil
}

// ListByBook returns the issue records of every copy of a book. An unknown
// book, including the zero UUID, yields an empty slice.
func (s *Service) ListByBook(ctx context.Context, bookID uuid.UUID) ([]domain.BookIssueHistory, error) {
	records, err := s.history.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list issue history by book: %w", err)
	}
	return orEmpty(records), nil
}

// ListByCopy returns the issue records of one copy. An unknown copy yields
// an empty slice.
func (s *Service) ListByCopy(ctx context.Context, copyID uuid.UUID) ([]domain.BookIssueHistory, error) {
	records, err := s.history.ListByCopy(ctx, copyID)
	if err != nil {
		return nil, fmt.Errorf("list issue history by copy: %w", err)
	}
	return orEmpty(records), nil
}

func orEmpty(records []domain.BookIssueHistory) []domain.BookIssueHistory {
	if records == nil {
		return []domain.BookIssueHistory{}
	}
	return records
}
