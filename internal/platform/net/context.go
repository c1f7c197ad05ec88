// Package net provides request-context helpers shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// HeaderRequestID is the header chi reads an upstream request id from; responses echo it
const HeaderRequestID = "X-Request-Id"

// WithRequest stores reqID where chi's RequestID middleware would, so RequestID finds it
// for callers outside the middleware chain (CLI, tests)
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
