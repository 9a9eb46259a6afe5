package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that aborts with 403 unless the
// authenticated user's role (stored in context by JWTAuth) is one of
// the given values.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
