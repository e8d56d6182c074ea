package controller

import "github.com/labstack/echo/v4"

type LifecycleController interface {
	Get(c echo.Context) error
	Progress(c echo.Context) error
}
