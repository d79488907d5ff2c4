//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/book"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/bookcopy"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/issuehistory"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/metrics"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
	"github.com/heartmarshall/library-backend/internal/service/circulation"
	"github.com/heartmarshall/library-backend/internal/service/history"
	"github.com/heartmarshall/library-backend/internal/transport/middleware"
	"github.com/heartmarshall/library-backend/internal/transport/rest"
)

type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	m := metrics.New()

	books := book.New(pool)
	copies := bookcopy.New(pool)
	issues := issuehistory.New(pool)
	txm := postgres.NewTxManager(pool)

	handlers := rest.Handlers{
		Books:   rest.NewBookHandler(catalog.NewService(logger, books), logger),
		Copies:  rest.NewCopyHandler(circulation.NewService(logger, books, copies, issues, txm, m), logger),
		History: rest.NewHistoryHandler(history.NewService(logger, issues), logger),
		Health:  rest.NewHealthHandler(pool, "e2e"),
	}

	mux := http.NewServeMux()
	handlers.Register(mux)
	mux.Handle("GET /metrics", m.Handler())

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS"}),
		middleware.Metrics(m),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Metrics: m}
}

// do sends a request with an optional JSON body and returns status and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding of the response into out.
func (ts *testServer) doJSON(t *testing.T, method, path string, body, out any) int {
	t.Helper()
	status, raw := ts.do(t, method, path, body)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return status
}

type bookDTO struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	ISBN   *string `json:"isbn"`
}

type copyDTO struct {
	ID           string  `json:"id"`
	CopyCode     string  `json:"copyCode"`
	Barcode      *string `json:"barcode"`
	Status       string  `json:"status"`
	Available    bool    `json:"available"`
	RackLocation *string `json:"rackLocation"`
	BookID       string  `json:"bookId"`
}

type historyDTO struct {
	ID         string  `json:"id"`
	BookID     string  `json:"bookId"`
	BookCopyID string  `json:"bookCopyId"`
	IssuedTo   *string `json:"issuedTo"`
	IssuedAt   string  `json:"issuedAt"`
	ReturnedAt *string `json:"returnedAt"`
	Status     string  `json:"status"`
}

type errorDTO struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

func (ts *testServer) createBook(t *testing.T, title string) bookDTO {
	t.Helper()
	var b bookDTO
	status := ts.doJSON(t, http.MethodPost, "/books", map[string]any{"title": title, "author": "E2E Author"}, &b)
	require.Equal(t, http.StatusCreated, status)
	return b
}

func (ts *testServer) registerCopy(t *testing.T, bookID string) copyDTO {
	t.Helper()
	var c copyDTO
	status := ts.doJSON(t, http.MethodPost, "/book-copies/"+bookID,
		map[string]any{"copyCode": "E2E-" + uuid.NewString()[:8], "rackLocation": "R1"}, &c)
	require.Equal(t, http.StatusCreated, status)
	return c
}
