package controller

import "github.com/labstack/echo/v4"

type AnalyticsController interface {
	TaskMetrics(c echo.Context) error
	FieldMetrics(c echo.Context) error
	CostAnalysis(c echo.Context) error
	CompletionRates(c echo.Context) error
	StatusDistribution(c echo.Context) error
	Dashboard(c echo.Context) error
}
