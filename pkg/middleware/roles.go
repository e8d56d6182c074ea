package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"olive/entities"
)

// RequireRole rejects callers whose role is not listed. Must run after Authenticate.
func RequireRole(roles ...entities.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			if !slices.Contains(roles, u.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "role "+string(u.Role)+" may not do this")
			}
			return next(c)
		}
	}
}
