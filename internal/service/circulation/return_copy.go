package circulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// ReturnCopy moves an ISSUED copy back to AVAILABLE and closes its active
// issue record. Returns domain.ErrNotFound for an unknown copy,
// domain.ErrInvalidState when the copy is not issued, and
// domain.ErrInconsistentState when an ISSUED copy has no active record.
func (s *Service) ReturnCopy(ctx context.Context, copyID uuid.UUID) (_ string, err error) {
	start := time.Now()
	defer func() { s.observe("return", start, err) }()

	var record *domain.BookIssueHistory

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.copies.GetByIDForUpdate(txCtx, copyID)
		if err != nil {
			return err
		}

		if err := c.Return(); err != nil {
			return err
		}

		record, err = s.history.GetActiveByCopy(txCtx, copyID)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("book copy %s is issued without an active issue record: %w", copyID, domain.ErrInconsistentState)
		}
		if err != nil {
			return fmt.Errorf("get active issue record: %w", err)
		}

		if err := record.Close(s.now()); err != nil {
			return fmt.Errorf("close issue record %s: %w", record.ID, domain.ErrInconsistentState)
		}

		if err := s.history.MarkReturned(txCtx, record.ID, *record.ReturnedAt); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("issue record %s closed concurrently: %w", record.ID, domain.ErrInconsistentState)
			}
			return fmt.Errorf("close issue record: %w", err)
		}

		if err := s.copies.UpdateState(txCtx, *c); err != nil {
			return fmt.Errorf("update copy state: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInconsistentState) {
			s.log.ErrorContext(ctx, "inconsistent circulation state",
				slog.String("copy_id", copyID.String()),
				slog.String("error", err.Error()),
			)
		}
		return "", fmt.Errorf("return copy: %w", err)
	}

	s.log.InfoContext(ctx, "book copy returned",
		slog.String("copy_id", copyID.String()),
		slog.String("issue_id", record.ID.String()),
	)

	return ReturnedMessage, nil
}
