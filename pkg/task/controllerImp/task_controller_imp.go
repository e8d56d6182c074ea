package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/middleware"
	"olive/pkg/task/controller"
	"olive/pkg/task/repository"
	"olive/pkg/task/service"
)

type TaskCtrl struct{ svc service.TaskService }

func New(svc service.TaskService) controller.TaskController { return &TaskCtrl{svc} }

// List serves GET /tasks?fieldId=&assignedTo=.
func (h *TaskCtrl) List(c echo.Context) error {
	q := repository.TaskQuery{
		FieldID:    c.QueryParam("fieldId"),
		AssignedTo: c.QueryParam("assignedTo"),
	}
	out, err := h.svc.List(c.Request().Context(), middleware.CurrentUser(c), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Get(c echo.Context) error {
	t, err := h.svc.Get(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Create(c echo.Context) error {
	var req service.CreateTaskInput
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	t, err := h.svc.Create(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) Update(c echo.Context) error {
	var req service.TaskPatch
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	t, err := h.svc.Update(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

type statusReq struct {
	Status entities.TaskStatus `json:"status" validate:"required"`
}

func (h *TaskCtrl) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	t, err := h.svc.UpdateStatus(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

type assignReq struct {
	UserID string `json:"userId"`
}

func (h *TaskCtrl) Assign(c echo.Context) error {
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	t, err := h.svc.Assign(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) AddEvidence(c echo.Context) error {
	var req service.EvidenceInput
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("bad json")
	}
	ev, err := h.svc.AddEvidence(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ev)
}
