package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"olive/pkg/lifecycle/controller"
	"olive/pkg/lifecycle/service"
	"olive/pkg/middleware"
)

type LifecycleCtrl struct{ svc service.LifecycleService }

func New(svc service.LifecycleService) controller.LifecycleController { return &LifecycleCtrl{svc} }

func (h *LifecycleCtrl) Get(c echo.Context) error {
	l, err := h.svc.Get(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, l)
}

// Progress answers 207 with the saved lifecycle when only the first of the two writes landed.
func (h *LifecycleCtrl) Progress(c echo.Context) error {
	l, err := h.svc.Progress(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if errors.Is(err, service.ErrPartialProgression) && l != nil {
		return c.JSON(http.StatusMultiStatus, echo.Map{"lifecycle": l, "error": err.Error(), "code": "PARTIAL_PROGRESSION"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, l)
}
