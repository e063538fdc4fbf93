package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yogaflow/studio-api/internal/api/metrics"
	"github.com/yogaflow/studio-api/internal/auth"
)

// IdentityLoader resolves a verified token subject to a full identity.
// A (nil, nil) return means the subject no longer maps to an account.
type IdentityLoader interface {
	Load(ctx context.Context, email string) (*auth.Identity, error)
}

const bearerPrefix = "Bearer "

// Authenticate runs once per request, before any business logic. It extracts
// the bearer token, verifies it, loads the principal, and binds the identity
// to the request context. It never terminates the request itself: every
// failure mode simply leaves the request anonymous, and protected routes
// reject later via RequireAuth/RequireAdmin. In particular a failing user
// store leaves the request anonymous (fail-closed), never authenticated.
func Authenticate(codec *auth.Codec, loader IdentityLoader, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := extractBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			subject, err := codec.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				return next(c)
			}

			identity, err := loader.Load(c.Request().Context(), subject)
			if err != nil {
				logger.Warn().Err(err).Msg("identity load failed, continuing as anonymous")
				metrics.TokenVerificationsTotal.WithLabelValues("load_error").Inc()
				return next(c)
			}
			if identity == nil {
				metrics.TokenVerificationsTotal.WithLabelValues("unknown_subject").Inc()
				return next(c)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			ctx := auth.WithIdentity(c.Request().Context(), identity)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireAuth terminates anonymous requests with the uniform 401 body.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if auth.FromContext(c.Request().Context()) == nil {
				return auth.Unauthorized(c, "Full authentication is required to access this resource")
			}
			return next(c)
		}
	}
}

// extractBearer accepts only the exact case-sensitive "Bearer " scheme with a
// non-empty token. Anything else (missing header, "Basic", lowercase "bearer",
// empty value) is "no credential present", not an error.
func extractBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	return token, token != ""
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpired):
		return "expired"
	case errors.Is(err, auth.ErrBadSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}
