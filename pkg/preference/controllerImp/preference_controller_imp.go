package controllerImp

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"olive/pkg/apperr"
	"olive/pkg/middleware"
	"olive/pkg/preference/controller"
	"olive/pkg/preference/service"
)

const maxPrefsBody = 16 << 10

type PrefCtrl struct{ svc service.PreferenceService }

func New(svc service.PreferenceService) controller.PreferenceController { return &PrefCtrl{svc} }

func (h *PrefCtrl) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Update takes a partial preferences document (PATCH semantics on PUT and PATCH alike).
func (h *PrefCtrl) Update(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxPrefsBody))
	if err != nil {
		return apperr.Validation("unreadable body")
	}
	p, err := h.svc.Update(c.Request().Context(), middleware.CurrentUser(c).ID, body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PrefCtrl) Reset(c echo.Context) error {
	p, err := h.svc.Reset(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}
