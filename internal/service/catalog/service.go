package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type bookRepo interface {
	Create(ctx context.Context, b domain.Book) (*domain.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
}

// Service provides book registration and lookups.
type Service struct {
	books bookRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	books bookRepo,
) *Service {
	return &Service{
		books: books,
		log:   log.With("service", "catalog"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}
