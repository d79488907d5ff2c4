package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// CreateBookInput holds the parameters for registering a book.
type CreateBookInput struct {
	Title  string
	Author string
	ISBN   *string
}

// Validate checks all fields and collects all errors.
func (i CreateBookInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}

	author := strings.TrimSpace(i.Author)
	if author == "" {
		errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
	}
	if utf8.RuneCountInString(author) > 300 {
		errs = append(errs, domain.FieldError{Field: "author", Message: "max 300 characters"})
	}

	if i.ISBN != nil && len(strings.TrimSpace(*i.ISBN)) > 20 {
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "max 20 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetBookInput holds the parameters for fetching a book.
type GetBookInput struct {
	BookID uuid.UUID
}
