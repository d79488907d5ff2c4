package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Book is a catalogued title. Copies reference it by BookID.
type Book struct {
	ID        uuid.UUID
	Title     string
	Author    string
	ISBN      *string
	CreatedAt time.Time
}

// BookCopy is a physical, individually trackable instance of a Book.
// Available always mirrors Status == CopyStatusAvailable.
type BookCopy struct {
	ID           uuid.UUID
	BookID       uuid.UUID
	CopyCode     string
	Barcode      *string
	RackLocation *string
	Status       CopyStatus
	Available    bool
	CreatedAt    time.Time
}

// NewBookCopy builds an AVAILABLE copy of the given book.
func NewBookCopy(bookID uuid.UUID, copyCode string, barcode, rackLocation *string, now time.Time) BookCopy {
	return BookCopy{
		ID:           uuid.New(),
		BookID:       bookID,
		CopyCode:     copyCode,
		Barcode:      barcode,
		RackLocation: rackLocation,
		Status:       CopyStatusAvailable,
		Available:    true,
		CreatedAt:    now,
	}
}

// Issue moves the copy from AVAILABLE to ISSUED.
func (c *BookCopy) Issue() error {
	if c.Status != CopyStatusAvailable {
		return fmt.Errorf("book copy %s is %s, not available: %w", c.ID, c.Status, ErrInvalidState)
	}
	c.Status = CopyStatusIssued
	c.Available = false
	return nil
}

// Return moves the copy from ISSUED back to AVAILABLE. A LOST copy is
// rejected like an available one.
func (c *BookCopy) Return() error {
	if c.Status != CopyStatusIssued {
		return fmt.Errorf("book copy %s is %s, not issued: %w", c.ID, c.Status, ErrInvalidState)
	}
	c.Status = CopyStatusAvailable
	c.Available = true
	return nil
}

// IsConsistent reports whether Available agrees with Status.
func (c BookCopy) IsConsistent() bool {
	return c.Available == (c.Status == CopyStatusAvailable)
}

// BookIssueHistory records one issue of a copy. It is created on issue and
// closed exactly once on return.
type BookIssueHistory struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	BookCopyID uuid.UUID
	IssuedTo   *string
	IssuedAt   time.Time
	ReturnedAt *time.Time
	Status     IssueStatus
}

// NewIssueRecord opens an active issue record for the copy.
func NewIssueRecord(c BookCopy, issuedTo *string, now time.Time) BookIssueHistory {
	return BookIssueHistory{
		ID:         uuid.New(),
		BookID:     c.BookID,
		BookCopyID: c.ID,
		IssuedTo:   issuedTo,
		IssuedAt:   now,
		Status:     IssueStatusIssued,
	}
}

// IsActive reports whether the record is the copy's open issue.
func (h BookIssueHistory) IsActive() bool {
	return h.Status == IssueStatusIssued
}

// Close marks an active record as returned at the given time.
func (h *BookIssueHistory) Close(now time.Time) error {
	if !h.IsActive() {
		return fmt.Errorf("issue record %s is already closed: %w", h.ID, ErrInvalidState)
	}
	h.Status = IssueStatusReturned
	h.ReturnedAt = &now
	return nil
}
