package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// CreateUserRequest is the admin personnel-creation body.
type CreateUserRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// AssignTaskRequest is the admin task-assignment body.
type AssignTaskRequest struct {
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
}

// Users returns the full personnel roster.
func (c *Client) Users(ctx context.Context) ([]model.Personnel, error) {
	var users []model.Personnel
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser provisions a new account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*model.Personnel, error) {
	var created model.Personnel
	if err := c.do(ctx, http.MethodPost, "/admin/users", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteUser removes a roster entry.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil)
}

// AdminTasks returns every task with the assignee embedded.
func (c *Client) AdminTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/admin/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// AssignTask creates a task for a user.
func (c *Client) AssignTask(ctx context.Context, req AssignTaskRequest) (*model.Task, error) {
	var created model.Task
	if err := c.do(ctx, http.MethodPost, "/admin/tasks", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteAdminTask removes any task by id.
func (c *Client) DeleteAdminTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/tasks/"+id, nil, nil)
}
