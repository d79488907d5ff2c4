// Package history answers read-only queries over the issue history.
package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type historyRepo interface {
	ListAll(ctx context.Context) ([]domain.BookIssueHistory, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]domain.BookIssueHistory, error)
	ListByCopy(ctx context.Context, copyID uuid.UUID) ([]domain.BookIssueHistory, error)
}

// Service provides issue history lookups.
type Service struct {
	history historyRepo
	log     *slog.Logger
}

// NewService creates a new History service.
func NewService(log *slog.Logger, history historyRepo) *Service {
	return &Service{
		history: history,
		log:     log.With("service", "history"),
	}
}
