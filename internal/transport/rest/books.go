package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
)

type catalogService interface {
	CreateBook(ctx context.Context, input catalog.CreateBookInput) (*domain.Book, error)
	GetBook(ctx context.Context, input catalog.GetBookInput) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
}

// BookHandler serves /books.
type BookHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(svc catalogService, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, log: logger.With("handler", "books")}
}

// Create handles POST /books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	book, err := h.svc.CreateBook(r.Context(), catalog.CreateBookInput{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookResponse(*book))
}

// List handles GET /books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(books, toBookResponse))
}

// Get handles GET /books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	book, err := h.svc.GetBook(r.Context(), catalog.GetBookInput{BookID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(*book))
}
