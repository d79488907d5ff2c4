package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/circulation"
)

type circulationService interface {
	RegisterCopy(ctx context.Context, input circulation.RegisterCopyInput) (*domain.BookCopy, error)
	ListCopies(ctx context.Context, bookID uuid.UUID) ([]domain.BookCopy, error)
	GetCopy(ctx context.Context, copyID uuid.UUID) (*domain.BookCopy, error)
	IssueCopy(ctx context.Context, input circulation.IssueCopyInput) (*domain.BookCopy, error)
	ReturnCopy(ctx context.Context, copyID uuid.UUID) (string, error)
}

// CopyHandler serves /book-copies.
type CopyHandler struct {
	svc circulationService
	log *slog.Logger
}

// NewCopyHandler creates a CopyHandler.
func NewCopyHandler(svc circulationService, logger *slog.Logger) *CopyHandler {
	return &CopyHandler{svc: svc, log: logger.With("handler", "copies")}
}

// Register handles POST /book-copies/{bookId}.
func (h *CopyHandler) Register(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathUUID(w, r, "bookId")
	if !ok {
		return
	}

	var req registerCopyRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	c, err := h.svc.RegisterCopy(r.Context(), circulation.RegisterCopyInput{
		BookID:       bookID,
		CopyCode:     req.CopyCode,
		Barcode:      req.Barcode,
		RackLocation: req.RackLocation,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCopyResponse(*c))
}

// ListByBook handles GET /book-copies/book/{bookId}.
func (h *CopyHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathUUID(w, r, "bookId")
	if !ok {
		return
	}

	copies, err := h.svc.ListCopies(r.Context(), bookID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(copies, toCopyResponse))
}

// Get handles GET /book-copies/{copyId}.
func (h *CopyHandler) Get(w http.ResponseWriter, r *http.Request) {
	copyID, ok := pathUUID(w, r, "copyId")
	if !ok {
		return
	}

	c, err := h.svc.GetCopy(r.Context(), copyID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCopyResponse(*c))
}

// Issue handles POST /book-copies/{copyId}/issue. The body is optional.
func (h *CopyHandler) Issue(w http.ResponseWriter, r *http.Request) {
	copyID, ok := pathUUID(w, r, "copyId")
	if !ok {
		return
	}

	var req issueCopyRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	c, err := h.svc.IssueCopy(r.Context(), circulation.IssueCopyInput{
		CopyID:   copyID,
		IssuedTo: req.IssuedTo,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCopyResponse(*c))
}

// Return handles POST /book-copies/{copyId}/return. Success is a plain-text
// confirmation.
func (h *CopyHandler) Return(w http.ResponseWriter, r *http.Request) {
	copyID, ok := pathUUID(w, r, "copyId")
	if !ok {
		return
	}

	msg, err := h.svc.ReturnCopy(r.Context(), copyID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeText(w, http.StatusOK, msg)
}
