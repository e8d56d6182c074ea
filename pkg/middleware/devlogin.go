package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevCookie carries the development identity between requests.
const DevCookie = "OLIVE_UID"

// devUID reads the development identity from the cookie, or from ?uid= which then
// becomes the cookie.
func devUID(c echo.Context) string {
	if ck, err := c.Cookie(DevCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	if q := c.QueryParam("uid"); q != "" {
		SetDevCookie(c, q)
		return q
	}
	return ""
}

func SetDevCookie(c echo.Context, uid string) {
	c.SetCookie(&http.Cookie{Name: DevCookie, Value: uid, Path: "/", HttpOnly: true})
}
