package controller

import "github.com/labstack/echo/v4"

type CalendarController interface {
	Events(c echo.Context) error
}
