// Package bookcopy implements the BookCopy repository using PostgreSQL.
// Status changes go through UpdateState; reads for a state change should use
// GetByIDForUpdate inside a transaction so concurrent issue/return calls on
// one copy serialize on the row lock.
package bookcopy

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const table = "book_copies"

var columns = []string{
	"id", "book_id", "copy_code", "barcode", "status", "available", "rack_location", "created_at",
}

// Repo provides book copy persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new book copy repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a copy and returns the stored row.
// Returns domain.ErrAlreadyExists on a duplicate copy_code or barcode and
// domain.ErrNotFound when the referenced book does not exist.
func (r *Repo) Create(ctx context.Context, c domain.BookCopy) (*domain.BookCopy, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.BookID, c.CopyCode, c.Barcode, string(c.Status), c.Available, c.RackLocation, c.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert book copy: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	created, err := scanCopy(row)
	if err != nil {
		return nil, postgres.MapError(err, "book_copy", c.ID)
	}
	return &created, nil
}

// GetByID returns a copy by primary key.
// Returns domain.ErrNotFound if the copy does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookCopy, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookCopy, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.BookCopy, error) {
	builder := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select book copy: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	c, err := scanCopy(row)
	if err != nil {
		return nil, postgres.MapError(err, "book_copy", id)
	}
	return &c, nil
}

// ListByBook returns all copies of a book ordered by creation time.
// An unknown book yields an empty slice.
func (r *Repo) ListByBook(ctx context.Context, bookID uuid.UUID) ([]domain.BookCopy, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"book_id": bookID}).
		OrderBy("created_at", "copy_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list book copies: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list book copies: %w", err)
	}
	defer rows.Close()

	copies := make([]domain.BookCopy, 0)
	for rows.Next() {
		c, err := scanCopy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book copy: %w", err)
		}
		copies = append(copies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list book copies: %w", err)
	}

	return copies, nil
}

// UpdateState persists the copy's status and available flag.
// Returns domain.ErrNotFound if no row was updated.
func (r *Repo) UpdateState(ctx context.Context, c domain.BookCopy) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(c.Status)).
		Set("available", c.Available).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update book copy: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "book_copy", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book_copy %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCopy(s scanner) (domain.BookCopy, error) {
	var (
		c      domain.BookCopy
		status string
	)
	err := s.Scan(&c.ID, &c.BookID, &c.CopyCode, &c.Barcode, &status, &c.Available, &c.RackLocation, &c.CreatedAt)
	if err != nil {
		return domain.BookCopy{}, err
	}
	c.Status = domain.CopyStatus(status)
	return c, nil
}
