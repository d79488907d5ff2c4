// Package circulation manages the copy lifecycle: registering copies and
// moving them between AVAILABLE and ISSUED together with their issue history.
// Every state change runs in one transaction with the copy row locked.
package circulation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/metrics"
)

// ReturnedMessage is the confirmation returned by ReturnCopy.
const ReturnedMessage = "Book returned successfully"

type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
}

type copyRepo interface {
	Create(ctx context.Context, c domain.BookCopy) (*domain.BookCopy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookCopy, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookCopy, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]domain.BookCopy, error)
	UpdateState(ctx context.Context, c domain.BookCopy) error
}

type historyRepo interface {
	Create(ctx context.Context, h domain.BookIssueHistory) (*domain.BookIssueHistory, error)
	GetActiveByCopy(ctx context.Context, copyID uuid.UUID) (*domain.BookIssueHistory, error)
	MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	ObserveCirculation(operation, outcome string, start time.Time)
}

// Service provides copy lifecycle operations.
type Service struct {
	books   bookRepo
	copies  copyRepo
	history historyRepo
	tx      txManager
	metrics recorder
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Circulation service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	copies copyRepo,
	history historyRepo,
	tx txManager,
	rec recorder,
) *Service {
	return &Service{
		books:   books,
		copies:  copies,
		history: history,
		tx:      tx,
		metrics: rec,
		log:     log.With("service", "circulation"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) observe(operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveCirculation(operation, outcomeOf(err), start)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrInconsistentState):
		return metrics.OutcomeInconsistent
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidState):
		return metrics.OutcomeInvalidState
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
