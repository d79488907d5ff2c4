package rest

import (
	"time"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type createBookRequest struct {
	Title  string  `json:"title"  validate:"required,max=500"`
	Author string  `json:"author" validate:"required,max=300"`
	ISBN   *string `json:"isbn"   validate:"omitempty,max=20"`
}

type registerCopyRequest struct {
	CopyCode     string  `json:"copyCode"     validate:"required,max=64"`
	Barcode      *string `json:"barcode"      validate:"omitempty,max=64"`
	RackLocation *string `json:"rackLocation" validate:"omitempty,max=64"`
}

type issueCopyRequest struct {
	IssuedTo *string `json:"issuedTo" validate:"omitempty,max=200"`
}

type bookResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      *string   `json:"isbn"`
	CreatedAt time.Time `json:"createdAt"`
}

type copyResponse struct {
	ID           string    `json:"id"`
	CopyCode     string    `json:"copyCode"`
	Barcode      *string   `json:"barcode"`
	Status       string    `json:"status"`
	Available    bool      `json:"available"`
	RackLocation *string   `json:"rackLocation"`
	BookID       string    `json:"bookId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type historyResponse struct {
	ID         string     `json:"id"`
	BookID     string     `json:"bookId"`
	BookCopyID string     `json:"bookCopyId"`
	IssuedTo   *string    `json:"issuedTo"`
	IssuedAt   time.Time  `json:"issuedAt"`
	ReturnedAt *time.Time `json:"returnedAt"`
	Status     string     `json:"status"`
}

func toBookResponse(b domain.Book) bookResponse {
	return bookResponse{
		ID:        b.ID.String(),
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		CreatedAt: b.CreatedAt,
	}
}

func toCopyResponse(c domain.BookCopy) copyResponse {
	return copyResponse{
		ID:           c.ID.String(),
		CopyCode:     c.CopyCode,
		Barcode:      c.Barcode,
		Status:       c.Status.String(),
		Available:    c.Available,
		RackLocation: c.RackLocation,
		BookID:       c.BookID.String(),
		CreatedAt:    c.CreatedAt,
	}
}

func toHistoryResponse(h domain.BookIssueHistory) historyResponse {
	return historyResponse{
		ID:         h.ID.String(),
		BookID:     h.BookID.String(),
		BookCopyID: h.BookCopyID.String(),
		IssuedTo:   h.IssuedTo,
		IssuedAt:   h.IssuedAt,
		ReturnedAt: h.ReturnedAt,
		Status:     h.Status.String(),
	}
}

// mapSlice converts a slice and never returns nil, so empty lists encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
