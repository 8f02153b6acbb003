package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// UpdateTaskRequest is the status transition body.
type UpdateTaskRequest struct {
	Status model.TaskStatus `json:"status" validate:"required,oneof=pending in-progress completed"`
}

func (s *Server) handleMyTasks(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	records := s.store.TasksByUser(user.ID)
	tasks := make([]model.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.Task)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleUpdateTask(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, ok := s.store.TaskByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	}
	if task.UserID != user.ID && user.Role != model.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Not your task")
	}

	wasActive := task.Status == model.TaskInProgress
	s.store.SetTaskStatus(task.ID, req.Status)
	if req.Status == model.TaskCompleted && wasActive {
		// queue rule: finishing the active task activates the oldest pending one
		s.store.PromoteNextPending(task.UserID)
	}

	updated, _ := s.store.TaskByID(task.ID)
	return c.JSON(http.StatusOK, updated.Task)
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	task, ok := s.store.TaskByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	}
	if task.UserID != user.ID && user.Role != model.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Not your task")
	}
	s.store.DeleteTask(task.ID)
	return c.NoContent(http.StatusNoContent)
}
