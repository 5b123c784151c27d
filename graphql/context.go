package graphql

import (
	"context"

	"hotbray.GO/service/fastorder"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const ctxKeyBulkResolver contextKey = "bulkResolver"

// WithBulkResolver makes b available to extension resolvers.
func WithBulkResolver(ctx context.Context, b *fastorder.BulkResolver) context.Context {
	return context.WithValue(ctx, ctxKeyBulkResolver, b)
}

// BulkResolverFromContext returns the bulk resolver attached to ctx, if any.
func BulkResolverFromContext(ctx context.Context) (*fastorder.BulkResolver, bool) {
	b, ok := ctx.Value(ctxKeyBulkResolver).(*fastorder.BulkResolver)
	return b, ok && b != nil
}
