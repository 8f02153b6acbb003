package mockapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// CreateUserRequest is the admin personnel-creation body.
type CreateUserRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Role     model.Role `json:"role" validate:"required,oneof=user admin"`
}

// AssignTaskRequest is the admin task-assignment body.
type AssignTaskRequest struct {
	UserID      string    `json:"userId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
}

func (s *Server) handleListUsers(c echo.Context) error {
	records := s.store.ListUsers()
	users := make([]model.Personnel, 0, len(records))
	for _, r := range records {
		users = append(users, r.Personnel)
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) handleCreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, exists := s.store.UserByEmail(req.Email); exists {
		return echo.NewHTTPError(http.StatusBadRequest, "User already exists")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create user")
	}
	user := s.store.CreateUser(req.Name, req.Email, hash, req.Role)
	return c.JSON(http.StatusCreated, user.Personnel)
}

func (s *Server) handleDeleteUser(c echo.Context) error {
	if !s.store.DeleteUser(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListTasks(c echo.Context) error {
	records := s.store.ListTasks()
	tasks := make([]model.Task, 0, len(records))
	for _, r := range records {
		task := r.Task
		if assignee, ok := s.store.UserByID(r.UserID); ok {
			task.User = &model.TaskUser{ID: assignee.ID, Name: assignee.Name}
		}
		tasks = append(tasks, task)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleAssignTask(c echo.Context) error {
	var req AssignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.DueDate.Before(time.Now()) {
		return echo.NewHTTPError(http.StatusBadRequest, "Due date must be in the future")
	}
	assignee, ok := s.store.UserByID(req.UserID)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Assigned user not found")
	}

	// one active task per user; the rest queue as pending
	status := model.TaskInProgress
	if s.store.HasActiveTask(assignee.ID) {
		status = model.TaskPending
	}
	task := s.store.CreateTask(assignee.ID, req.Title, req.Description, req.DueDate, status)
	return c.JSON(http.StatusCreated, task.Task)
}

func (s *Server) handleDeleteAdminTask(c echo.Context) error {
	if !s.store.DeleteTask(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	}
	return c.NoContent(http.StatusNoContent)
}
