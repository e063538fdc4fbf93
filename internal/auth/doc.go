// Package auth is the stateless authentication core: it mints and verifies
// the signed bearer tokens presented on every request, carries the resolved
// identity through the request context, and centralizes the owner-or-admin
// access decision so the 401/403 distinction is made in exactly one place.
package auth
