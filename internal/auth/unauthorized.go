package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// UnauthorizedResponse is the uniform body returned for every authentication
// failure. The shape is identical whether the credential was missing,
// malformed, expired, forged, or referenced a deleted account, so the
// response leaks nothing about which check failed.
type UnauthorizedResponse struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// NewUnauthorized builds the canonical 401 payload.
func NewUnauthorized(message, path string) UnauthorizedResponse {
	return UnauthorizedResponse{
		Status:    http.StatusUnauthorized,
		Error:     "Unauthorized",
		Message:   message,
		Path:      path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Unauthorized renders the canonical 401 payload for the current request.
func Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, NewUnauthorized(message, c.Request().URL.Path))
}
