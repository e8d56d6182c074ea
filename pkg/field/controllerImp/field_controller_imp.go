package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"

	"olive/pkg/apperr"
	"olive/pkg/field/controller"
	"olive/pkg/field/service"
	"olive/pkg/middleware"
)

const defaultRadiusKm = 10.0

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) controller.FieldController { return &FieldCtrl{svc} }

// List serves GET /fields, optionally ?near=lat,lng&radiusKm=.
func (h *FieldCtrl) List(c echo.Context) error {
	var q service.ListQuery
	if v := c.QueryParam("near"); v != "" {
		n, err := parseNear(v, c.QueryParam("radiusKm"))
		if err != nil {
			return err
		}
		q.Near = n
	}
	out, err := h.svc.List(c.Request().Context(), middleware.CurrentUser(c), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func parseNear(v, radius string) (*service.Near, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return nil, apperr.Validation("near must be lat,lng")
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, apperr.Validation("near must be lat,lng")
	}
	km := defaultRadiusKm
	if radius != "" {
		r, err := strconv.ParseFloat(radius, 64)
		if err != nil || r <= 0 {
			return nil, apperr.Validation("radiusKm must be a positive number")
		}
		km = r
	}
	return &service.Near{Center: orb.Point{lng, lat}, RadiusKm: km}, nil
}

func (h *FieldCtrl) Get(c echo.Context) error {
	f, err := h.svc.Get(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req service.CreateFieldInput
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	f, err := h.svc.Create(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	var req service.FieldPatch
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	f, err := h.svc.Update(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GeoJSON serves the visible groves as a FeatureCollection for the map view.
func (h *FieldCtrl) GeoJSON(c echo.Context) error {
	fc, err := h.svc.GeoJSON(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/geo+json", b)
}
