package itemservice

import (
	"context"

	"github.com/google/uuid"
)

type validationIDKey struct{}

// WithValidationID stores the correlation id of a validation run in ctx.
func WithValidationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, validationIDKey{}, id)
}

// ValidationID returns the correlation id stored in ctx, if any.
func ValidationID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(validationIDKey{}).(uuid.UUID)
	return id, ok
}

// ensureValidationID keeps an id already present in ctx.
func ensureValidationID(ctx context.Context) (context.Context, uuid.UUID) {
	if id, ok := ValidationID(ctx); ok {
		return ctx, id
	}
	id := uuid.New()
	return WithValidationID(ctx, id), id
}
