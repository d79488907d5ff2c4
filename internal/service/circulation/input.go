package circulation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// RegisterCopyInput holds the parameters for registering a physical copy.
type RegisterCopyInput struct {
	BookID       uuid.UUID
	CopyCode     string
	Barcode      *string
	RackLocation *string
}

// Validate checks all fields and collects all errors.
func (i RegisterCopyInput) Validate() error {
	var errs []domain.FieldError

	code := strings.TrimSpace(i.CopyCode)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "copyCode", Message: "required"})
	}
	if len(code) > 64 {
		errs = append(errs, domain.FieldError{Field: "copyCode", Message: "max 64 characters"})
	}

	if i.Barcode != nil && len(strings.TrimSpace(*i.Barcode)) > 64 {
		errs = append(errs, domain.FieldError{Field: "barcode", Message: "max 64 characters"})
	}
	if i.RackLocation != nil && len(strings.TrimSpace(*i.RackLocation)) > 64 {
		errs = append(errs, domain.FieldError{Field: "rackLocation", Message: "max 64 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// IssueCopyInput holds the parameters for issuing a copy.
type IssueCopyInput struct {
	CopyID   uuid.UUID
	IssuedTo *string
}

// Validate checks the optional borrower name. Ids are not checked here: an
// id that matches no copy is reported as not found by the store.
func (i IssueCopyInput) Validate() error {
	if i.IssuedTo != nil && len(strings.TrimSpace(*i.IssuedTo)) > 200 {
		return domain.NewValidationError("issuedTo", "max 200 characters")
	}
	return nil
}
