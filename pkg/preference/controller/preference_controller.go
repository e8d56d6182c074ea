package controller

import "github.com/labstack/echo/v4"

type PreferenceController interface {
	Get(c echo.Context) error
	Update(c echo.Context) error
	Reset(c echo.Context) error
}
