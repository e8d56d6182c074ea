package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"olive/entities"
	"olive/pkg/auth/token"
	userRepo "olive/pkg/user/repository"
)

const (
	ctxUser = "user"
	ctxUID  = "uid"
)

// Authenticate resolves the caller from the bearer token and loads the user record.
// With devLogin on, a DevLogin uid (cookie or query) is accepted when no token is sent.
func Authenticate(tokens *token.Issuer, users userRepo.UserRepository, devLogin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
				parts := strings.SplitN(h, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid auth header")
				}
				claims, err := tokens.Parse(parts[1])
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				}
				uid = claims.UserID
			} else if devLogin {
				uid = devUID(c)
			}
			if uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing Authorization header")
			}

			u, err := users.FindByID(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			c.Set(ctxUID, u.ID)
			c.Set(ctxUser, u)
			return next(c)
		}
	}
}

// CurrentUser returns the caller stored by Authenticate, nil on public routes.
func CurrentUser(c echo.Context) *entities.User {
	u, _ := c.Get(ctxUser).(*entities.User)
	return u
}
