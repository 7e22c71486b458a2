// ABOUTME: Request-scoped context values shared by the HTTP layer and outbound transports
// ABOUTME: Carries the inbound request ID so upstream calls can be correlated in logs

package domain

import "context"

type requestIDKey struct{}

// WithRequestID returns a context carrying requestID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored in ctx, or ""
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
