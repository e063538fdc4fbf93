package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yogaflow/studio-api/internal/auth"
	"github.com/yogaflow/studio-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders auth.ErrUnauthenticated with the uniform 401 body.
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Missing identity gets the same shaped body as every other
		// authentication failure.
		if errors.Is(err, auth.ErrUnauthenticated) {
			_ = c.JSON(http.StatusUnauthorized, auth.NewUnauthorized(err.Error(), c.Request().URL.Path))
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many login attempts, retry later"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "email already taken"
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "invalid identifier"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrTeacherNotFound):
		return http.StatusNotFound, "teacher not found"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "session not found"
	case errors.Is(err, domain.ErrAlreadyParticipating):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotParticipating):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
