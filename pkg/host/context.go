package host

import (
	"context"

	"github.com/arthur-debert/modulify/pkg/registry"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var providerKey = key{}

// WithProvider returns a new context carrying p.
func WithProvider(ctx context.Context, p registry.Provider) context.Context {
	return context.WithValue(ctx, providerKey, p)
}

// FromContext extracts the provider from ctx. Without one it returns
// registry.Null, so lookups simply find nothing.
func FromContext(ctx context.Context) registry.Provider {
	if p, ok := ctx.Value(providerKey).(registry.Provider); ok && p != nil {
		return p
	}
	return registry.Null
}
