package domain

import "time"

// AuthEventKind labels an entry in the authentication audit trail.
type AuthEventKind string

const (
	AuthEventLogin        AuthEventKind = "login"
	AuthEventLoginFailed  AuthEventKind = "login_failed"
	AuthEventRegistration AuthEventKind = "registration"
)

// AuthEvent records a single authentication attempt. Events are persisted
// asynchronously and best-effort: losing one must never fail a request.
type AuthEvent struct {
	ID        string
	Email     string
	Kind      AuthEventKind
	Timestamp time.Time
}
