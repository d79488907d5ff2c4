package rest

import "net/http"

// Handlers groups the REST handlers mounted by Register.
type Handlers struct {
	Books   *BookHandler
	Copies  *CopyHandler
	History *HistoryHandler
	Health  *HealthHandler
}

// Register mounts every REST route on mux. Nil handlers are skipped.
func (h Handlers) Register(mux *http.ServeMux) {
	if h.Books != nil {
		mux.HandleFunc("POST /books", h.Books.Create)
		mux.HandleFunc("GET /books", h.Books.List)
		mux.HandleFunc("GET /books/{id}", h.Books.Get)
	}

	if h.Copies != nil {
		mux.HandleFunc("POST /book-copies/{bookId}", h.Copies.Register)
		mux.HandleFunc("GET /book-copies/book/{bookId}", h.Copies.ListByBook)
		mux.HandleFunc("GET /book-copies/{copyId}", h.Copies.Get)
		mux.HandleFunc("POST /book-copies/{copyId}/issue", h.Copies.Issue)
		mux.HandleFunc("POST /book-copies/{copyId}/return", h.Copies.Return)
	}

	if h.History != nil {
		mux.HandleFunc("GET /issue-history", h.History.ListAll)
		mux.HandleFunc("GET /issue-history/book/{bookId}", h.History.ListByBook)
		mux.HandleFunc("GET /issue-history/copy/{copyId}", h.History.ListByCopy)
	}

	if h.Health != nil {
		mux.HandleFunc("GET /live", h.Health.Live)
		mux.HandleFunc("GET /ready", h.Health.Ready)
		mux.HandleFunc("GET /health", h.Health.Health)
	}
}
