// Package invocationid tags one CLI invocation with a random ID so every
// log line from that run can be correlated.
package invocationid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New generates a random UUID v4 invocation ID.
func New() string {
	return uuid.NewString()
}

// WithInvocationID returns a copy of ctx with the invocation ID attached.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the invocation ID from ctx. Returns "" if absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
