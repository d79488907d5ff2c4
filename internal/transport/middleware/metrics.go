package middleware

import (
	"net/http"
	"time"
)

// httpRecorder is satisfied by *metrics.Metrics.
type httpRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that records request count and latency per
// ServeMux route. It must sit directly in front of the mux so the matched
// pattern is visible after the handler returns.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			rec.ObserveHTTP(r.Method, routeOf(r), sw.status, time.Since(start))
		})
	}
}
