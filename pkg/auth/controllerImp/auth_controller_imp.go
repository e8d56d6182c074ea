package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"olive/pkg/apperr"
	"olive/pkg/auth/controller"
	"olive/pkg/auth/service"
	"olive/pkg/middleware"
	userRepo "olive/pkg/user/repository"
)

type authCtrl struct {
	svc   service.AuthService
	users userRepo.UserRepository
}

func NewAuthController(svc service.AuthService, users userRepo.UserRepository) controller.AuthController {
	return &authCtrl{svc: svc, users: users}
}

func (h *authCtrl) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	s, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *authCtrl) Login(c echo.Context) error {
	var req service.LoginInput
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	s, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

func (h *authCtrl) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// DevLogin sets the development identity cookie for ?uid=. Only routed with ENABLE_DEV_LOGIN.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		return apperr.Validation("uid is required")
	}
	u, err := h.users.FindByID(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	middleware.SetDevCookie(c, u.ID)
	return c.JSON(http.StatusOK, u)
}
