package controllerImp

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"olive/entities"
	"olive/pkg/analytics"
	"olive/pkg/apperr"
	"olive/pkg/calendar"
	"olive/pkg/calendar/controller"
	"olive/pkg/calendar/service"
	"olive/pkg/middleware"
)

type CalendarCtrl struct {
	svc service.CalendarService
	now func() time.Time
}

func New(svc service.CalendarService) controller.CalendarController {
	return &CalendarCtrl{svc: svc, now: time.Now}
}

// Events serves GET /calendar/events?start=&end=&fieldIds=&taskTypes=&statuses=&showTasks=
// &showDeadlines=&showLifecycles=. Without start/end the current month is shown.
func (h *CalendarCtrl) Events(c echo.Context) error {
	w, err := window(c.QueryParam("start"), c.QueryParam("end"), h.now())
	if err != nil {
		return err
	}
	f := calendar.Filter{
		FieldIDs:  list(c.QueryParam("fieldIds")),
		TaskTypes: list(c.QueryParam("taskTypes")),
	}
	for _, s := range list(c.QueryParam("statuses")) {
		st := entities.TaskStatus(s)
		if !st.Valid() {
			return apperr.Validationf("unknown status %q", s)
		}
		f.Statuses = append(f.Statuses, st)
	}
	for name, dst := range map[string]**bool{
		"showTasks":      &f.ShowTasks,
		"showDeadlines":  &f.ShowDeadlines,
		"showLifecycles": &f.ShowLifecycles,
	} {
		v := c.QueryParam(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return apperr.Validationf("%s must be true or false", name)
		}
		*dst = &b
	}

	out, err := h.svc.Events(c.Request().Context(), middleware.CurrentUser(c), w, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func window(start, end string, now time.Time) (calendar.Window, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if start == "" {
		start = first.Format(time.RFC3339)
	}
	if end == "" {
		end = first.AddDate(0, 1, 0).Add(-time.Nanosecond).Format(time.RFC3339Nano)
	}
	r, err := analytics.ParseRange(start, end, now)
	if err != nil {
		return calendar.Window{}, apperr.Validation(err.Error())
	}
	return calendar.Window{Start: r.Start, End: r.End}, nil
}

func list(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
