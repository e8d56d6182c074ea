package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	Download(c echo.Context) error
}
