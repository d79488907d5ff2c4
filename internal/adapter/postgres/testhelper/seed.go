package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedBook inserts a book and returns it.
func SeedBook(t *testing.T, pool *pgxpool.Pool) domain.Book {
	t.Helper()

	suffix := uniqueSuffix()
	book := domain.Book{
		ID:        uuid.New(),
		Title:     "Test Book " + suffix,
		Author:    "Author " + suffix,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO books (id, title, author, isbn, created_at) VALUES ($1, $2, $3, $4, $5)`,
		book.ID, book.Title, book.Author, book.ISBN, book.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return book
}

// SeedCopy inserts an AVAILABLE copy of bookID with unique code and barcode.
func SeedCopy(t *testing.T, pool *pgxpool.Pool, bookID uuid.UUID) domain.BookCopy {
	t.Helper()

	suffix := uniqueSuffix()
	barcode := "BC-" + suffix
	c := domain.NewBookCopy(bookID, "CC-"+suffix, &barcode, nil, now())

	_, err := pool.Exec(context.Background(),
		`INSERT INTO book_copies (id, book_id, copy_code, barcode, status, available, rack_location, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.BookID, c.CopyCode, c.Barcode, string(c.Status), c.Available, c.RackLocation, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCopy: %v", err)
	}

	return c
}

// SeedIssued marks the copy ISSUED and inserts its active history row.
func SeedIssued(t *testing.T, pool *pgxpool.Pool, c domain.BookCopy) domain.BookIssueHistory {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`UPDATE book_copies SET status = 'ISSUED', available = false WHERE id = $1`, c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedIssued update copy: %v", err)
	}

	h := domain.NewIssueRecord(c, nil, now())
	_, err = pool.Exec(ctx,
		`INSERT INTO book_issue_history (id, book_id, book_copy_id, issued_to, issued_at, returned_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		h.ID, h.BookID, h.BookCopyID, h.IssuedTo, h.IssuedAt, h.ReturnedAt, string(h.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIssued insert history: %v", err)
	}

	return h
}
