package circulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// IssueCopy moves an AVAILABLE copy to ISSUED and opens its issue record.
// Returns domain.ErrNotFound for an unknown copy and domain.ErrInvalidState
// when the copy is already issued. Nothing is written on failure.
func (s *Service) IssueCopy(ctx context.Context, input IssueCopyInput) (_ *domain.BookCopy, err error) {
	start := time.Now()
	defer func() { s.observe("issue", start, err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	issuedTo := domain.NormalizeOptional(input.IssuedTo, domain.NormalizeText)

	var (
		issued *domain.BookCopy
		record *domain.BookIssueHistory
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.copies.GetByIDForUpdate(txCtx, input.CopyID)
		if err != nil {
			return err
		}

		if err := c.Issue(); err != nil {
			return err
		}

		if err := s.copies.UpdateState(txCtx, *c); err != nil {
			return fmt.Errorf("update copy state: %w", err)
		}

		record, err = s.history.Create(txCtx, domain.NewIssueRecord(*c, issuedTo, s.now()))
		if errors.Is(err, domain.ErrAlreadyExists) {
			// The copy was AVAILABLE yet an open record exists.
			return fmt.Errorf("book copy %s already has an active issue record: %w", c.ID, domain.ErrInconsistentState)
		}
		if err != nil {
			return fmt.Errorf("create issue record: %w", err)
		}

		issued = c
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInconsistentState) {
			s.log.ErrorContext(ctx, "inconsistent circulation state",
				slog.String("copy_id", input.CopyID.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("issue copy: %w", err)
	}

	s.log.InfoContext(ctx, "book copy issued",
		slog.String("copy_id", issued.ID.String()),
		slog.String("book_id", issued.BookID.String()),
		slog.String("issue_id", record.ID.String()),
	)

	return issued, nil
}
