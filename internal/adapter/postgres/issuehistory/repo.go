// Package issuehistory implements the BookIssueHistory repository using
// PostgreSQL. A partial unique index guarantees at most one ISSUED row per
// copy; inserting a second one surfaces as domain.ErrAlreadyExists.
package issuehistory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const table = "book_issue_history"

var columns = []string{
	"id", "book_id", "book_copy_id", "issued_to", "issued_at", "returned_at", "status",
}

// Repo provides issue history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new issue history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an issue record and returns the stored row.
func (r *Repo) Create(ctx context.Context, h domain.BookIssueHistory) (*domain.BookIssueHistory, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(h.ID, h.BookID, h.BookCopyID, h.IssuedTo, h.IssuedAt, h.ReturnedAt, string(h.Status)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert issue record: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	created, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "book_issue_history", h.ID)
	}
	return &created, nil
}

// GetActiveByCopy returns the copy's ISSUED record.
// Returns domain.ErrNotFound if the copy has no active record.
func (r *Repo) GetActiveByCopy(ctx context.Context, copyID uuid.UUID) (*domain.BookIssueHistory, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"book_copy_id": copyID, "status": string(domain.IssueStatusIssued)}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select active issue record: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	h, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "active issue record for book_copy", copyID)
	}
	return &h, nil
}

// MarkReturned closes an ISSUED record. Rows already RETURNED are left alone
// and reported as domain.ErrNotFound.
func (r *Repo) MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(domain.IssueStatusReturned)).
		Set("returned_at", returnedAt).
		Where(squirrel.Eq{"id": id, "status": string(domain.IssueStatusIssued)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update issue record: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "book_issue_history", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book_issue_history %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListAll returns every issue record ordered by issue time.
func (r *Repo) ListAll(ctx context.Context) ([]domain.BookIssueHistory, error) {
	return r.list(ctx, nil)
}

// ListByBook returns all issue records of a book's copies.
func (r *Repo) ListByBook(ctx context.Context, bookID uuid.UUID) ([]domain.BookIssueHistory, error) {
	return r.list(ctx, squirrel.Eq{"book_id": bookID})
}

// ListByCopy returns all issue records of one copy.
func (r *Repo) ListByCopy(ctx context.Context, copyID uuid.UUID) ([]domain.BookIssueHistory, error) {
	return r.list(ctx, squirrel.Eq{"book_copy_id": copyID})
}

// list returns an empty slice (not nil) when nothing matches.
func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.BookIssueHistory, error) {
	builder := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("issued_at", "id")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list issue history: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list issue history: %w", err)
	}
	defer rows.Close()

	records := make([]domain.BookIssueHistory, 0)
	for rows.Next() {
		h, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue record: %w", err)
		}
		records = append(records, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list issue history: %w", err)
	}

	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (domain.BookIssueHistory, error) {
	var (
		h      domain.BookIssueHistory
		status string
	)
	err := s.Scan(&h.ID, &h.BookID, &h.BookCopyID, &h.IssuedTo, &h.IssuedAt, &h.ReturnedAt, &status)
	if err != nil {
		return domain.BookIssueHistory{}, err
	}
	h.Status = domain.IssueStatus(status)
	return h, nil
}
