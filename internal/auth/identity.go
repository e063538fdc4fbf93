package auth

import "context"

// Identity is the authenticated principal bound to a single request. It is
// stored in the request's context.Context and dies with it: nothing in this
// package keeps identity in package-level or pooled state, so concurrent
// requests can never observe each other's principal.
type Identity struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Admin     bool
}

type identityKey struct{}

// WithIdentity returns a child context carrying the identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the request identity, or nil for anonymous requests.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
