package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type historyService interface {
	ListAll(ctx context.Context) ([]domain.BookIssueHistory, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]domain.BookIssueHistory, error)
	ListByCopy(ctx context.Context, copyID uuid.UUID) ([]domain.BookIssueHistory, error)
}

// HistoryHandler serves /issue-history.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// ListAll handles GET /issue-history.
func (h *HistoryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListAll(r.Context())
	h.respond(w, r, records, err)
}

// ListByBook handles GET /issue-history/book/{bookId}.
func (h *HistoryHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathUUID(w, r, "bookId")
	if !ok {
		return
	}
	records, err := h.svc.ListByBook(r.Context(), bookID)
	h.respond(w, r, records, err)
}

// ListByCopy handles GET /issue-history/copy/{copyId}.
func (h *HistoryHandler) ListByCopy(w http.ResponseWriter, r *http.Request) {
	copyID, ok := pathUUID(w, r, "copyId")
	if !ok {
		return
	}
	records, err := h.svc.ListByCopy(r.Context(), copyID)
	h.respond(w, r, records, err)
}

func (h *HistoryHandler) respond(w http.ResponseWriter, r *http.Request, records []domain.BookIssueHistory, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(records, toHistoryResponse))
}
