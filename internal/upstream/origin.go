package upstream

import (
	"context"
	"net/url"
)

type contextKey string

const originKey = contextKey("origin")

// WithOrigin returns a context carrying the origin (scheme and host) of the
// incoming request. The client resolves a relative API base against it.
func WithOrigin(ctx context.Context, origin *url.URL) context.Context {
	return context.WithValue(ctx, originKey, origin)
}

// OriginFromContext returns the origin stored by WithOrigin.
func OriginFromContext(ctx context.Context) (*url.URL, bool) {
	origin, ok := ctx.Value(originKey).(*url.URL)
	return origin, ok && origin != nil
}
