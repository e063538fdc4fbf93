package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yogaflow/studio-api/internal/auth"
)

// RequireAdmin allows only admin identities through. Anonymous requests get
// the uniform 401 body; authenticated non-admins get 403. The two statuses
// are never collapsed: "no identity" is not "insufficient identity".
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := auth.FromContext(c.Request().Context())
			if id == nil {
				return auth.Unauthorized(c, "Full authentication is required to access this resource")
			}
			if !id.Admin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
