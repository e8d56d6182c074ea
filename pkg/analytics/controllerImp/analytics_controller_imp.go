package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"olive/pkg/analytics"
	"olive/pkg/analytics/controller"
	"olive/pkg/analytics/service"
	"olive/pkg/apperr"
	"olive/pkg/middleware"
)

type AnalyticsCtrl struct {
	svc service.AnalyticsService
	now func() time.Time
}

func New(svc service.AnalyticsService) controller.AnalyticsController {
	return &AnalyticsCtrl{svc: svc, now: time.Now}
}

func (h *AnalyticsCtrl) dateRange(c echo.Context) (analytics.DateRange, error) {
	r, err := analytics.ParseRange(c.QueryParam("from"), c.QueryParam("to"), h.now())
	if err != nil {
		return r, apperr.Validation(err.Error())
	}
	return r, nil
}

func (h *AnalyticsCtrl) TaskMetrics(c echo.Context) error {
	r, err := h.dateRange(c)
	if err != nil {
		return err
	}
	out, err := h.svc.TaskMetrics(c.Request().Context(), middleware.CurrentUser(c), r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// FieldMetrics accepts ?fieldIds=a,b to fix the order of the report.
func (h *AnalyticsCtrl) FieldMetrics(c echo.Context) error {
	r, err := h.dateRange(c)
	if err != nil {
		return err
	}
	var ids []string
	for _, id := range strings.Split(c.QueryParam("fieldIds"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	out, err := h.svc.FieldMetrics(c.Request().Context(), middleware.CurrentUser(c), ids, r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) CostAnalysis(c echo.Context) error {
	r, err := h.dateRange(c)
	if err != nil {
		return err
	}
	out, err := h.svc.CostAnalysis(c.Request().Context(), middleware.CurrentUser(c), r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) CompletionRates(c echo.Context) error {
	r, err := h.dateRange(c)
	if err != nil {
		return err
	}
	out, err := h.svc.CompletionRates(c.Request().Context(), middleware.CurrentUser(c), r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) StatusDistribution(c echo.Context) error {
	r, err := h.dateRange(c)
	if err != nil {
		return err
	}
	out, err := h.svc.StatusDistribution(c.Request().Context(), middleware.CurrentUser(c), r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) Dashboard(c echo.Context) error {
	r, err := h.dateRange(c)
	if err != nil {
		return err
	}
	out, err := h.svc.Dashboard(c.Request().Context(), middleware.CurrentUser(c), r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
