package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"olive/entities"
	"olive/pkg/user/controller"
	"olive/pkg/user/repository"
)

// UserCtrl is the directory used by the assignment picker. Password hashes never leave the
// entity (json:"-").
type UserCtrl struct {
	repo repository.UserRepository
}

func New(repo repository.UserRepository) controller.UserController {
	return &UserCtrl{repo: repo}
}

// List accepts ?role= to narrow the directory, e.g. to service providers.
func (h *UserCtrl) List(c echo.Context) error {
	users, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	role := entities.Role(c.QueryParam("role"))
	out := make([]entities.User, 0, len(users))
	for _, u := range users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserCtrl) Get(c echo.Context) error {
	u, err := h.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
