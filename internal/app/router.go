package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/metrics"
	"github.com/heartmarshall/library-backend/internal/transport/middleware"
	"github.com/heartmarshall/library-backend/internal/transport/rest"
)

// newRouter mounts the REST routes and the metrics endpoint and wraps them in
// the middleware stack. m is nil when metrics are disabled.
func newRouter(cfg *config.Config, logger *slog.Logger, handlers rest.Handlers, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	handlers.Register(mux)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	if m != nil {
		mux.Handle("GET "+cfg.Metrics.Path, m.Handler())
		// Innermost, so the matched ServeMux pattern is visible.
		mws = append(mws, middleware.Metrics(m))
	}

	return middleware.Chain(mws...)(mux)
}
