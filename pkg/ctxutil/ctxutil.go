// Package ctxutil carries request-scoped values through a context.
package ctxutil

import (
	"context"
	"log/slog"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestIDAttr returns the request ID as a log attribute. The attribute is
// empty (and dropped by slog handlers) when the context has no request ID.
func RequestIDAttr(ctx context.Context) slog.Attr {
	id := RequestIDFromCtx(ctx)
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
