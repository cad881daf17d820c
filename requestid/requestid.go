package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh correlation identifier in UUID text form.
func New() string {
	return uuid.NewString()
}

// NewContext returns a copy of ctx carrying id as the ambient correlation
// identifier. Passing the returned context down the call chain is what
// scopes the identifier to one logical request; sibling request trees never
// see each other's binding.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation identifier bound to ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// CurrentOrNew returns the identifier bound to ctx, or synthesizes a fresh
// one without binding it anywhere. The fallback is for code running outside
// any request scope, such as background tasks; two independent fallback
// calls never share an identifier.
func CurrentOrNew(ctx context.Context) string {
	if id, ok := FromContext(ctx); ok {
		return id
	}
	return New()
}
