package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"olive/pkg/apperr"
)

var logger = log.New("http")

// ErrorHandler renders every error as {"error": ..., "code": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status, body := render(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logger.Error(err)
	}
}

func render(err error) (int, echo.Map) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := apperr.CodeUnknown
		switch he.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			code = apperr.CodeUnauthorized
		case http.StatusNotFound:
			code = apperr.CodeNotFound
		case http.StatusBadRequest:
			code = apperr.CodeValidation
		}
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return he.Code, echo.Map{"error": msg, "code": code}
	}
	code := apperr.CodeOf(err)
	msg := err.Error()
	if code == apperr.CodeUnknown {
		msg = "internal error"
	}
	return apperr.HTTPStatus(err), echo.Map{"error": msg, "code": code}
}
