package auth

import (
	"context"
	"errors"
)

// Access errors. ErrUnauthenticated maps to 401 and ErrForbidden to 403 at
// the boundary; the two must never be collapsed into one another.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
)

// CanModify is the single ownership rule for protected resources: the caller
// may act when it is an admin or when it owns the resource. Handlers call
// this instead of re-implementing the check per endpoint.
func CanModify(ctx context.Context, ownerID string) error {
	id := FromContext(ctx)
	if id == nil {
		return ErrUnauthenticated
	}
	if id.Admin || id.UserID == ownerID {
		return nil
	}
	return ErrForbidden
}
