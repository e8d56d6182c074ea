package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"olive/pkg/analytics"
	"olive/pkg/apperr"
	"olive/pkg/middleware"
	"olive/pkg/report"
	"olive/pkg/report/controller"
	"olive/pkg/report/service"
)

var logger = log.New("report")

type ReportCtrl struct {
	svc service.ReportService
	now func() time.Time
}

func New(svc service.ReportService) controller.ReportController {
	return &ReportCtrl{svc: svc, now: time.Now}
}

// Download renders GET /reports/:kind?format=csv|xlsx|pdf&from=&to= as an attachment.
func (h *ReportCtrl) Download(c echo.Context) error {
	kind, ok := report.ParseKind(c.Param("kind"))
	if !ok {
		return apperr.NotFound("report", c.Param("kind"))
	}
	format, ok := report.ParseFormat(c.QueryParam("format"))
	if !ok {
		return apperr.Validation("format must be one of csv, xlsx, pdf")
	}
	r, err := analytics.ParseRange(c.QueryParam("from"), c.QueryParam("to"), h.now())
	if err != nil {
		return apperr.Validation(err.Error())
	}

	t, err := h.svc.Build(c.Request().Context(), middleware.CurrentUser(c), kind, r)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := report.Render(&buf, t, format); err != nil {
		return apperr.Wrap(apperr.CodeUnknown, "render report", err)
	}
	logger.Infof("report %s (%s) rows=%d bytes=%d", kind, format, len(t.Rows), buf.Len())

	name := fmt.Sprintf("%s_%s_%s.%s", kind, r.Start.Format("20060102"), r.End.Format("20060102"), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}
