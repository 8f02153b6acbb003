package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

type updateTaskRequest struct {
	Status model.TaskStatus `json:"status"`
}

// Tasks returns the caller's assigned tasks, unordered.
func (c *Client) Tasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTaskStatus requests a status transition for one task.
func (c *Client) UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) (*model.Task, error) {
	var task model.Task
	req := updateTaskRequest{Status: status}
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes one of the caller's tasks.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%s", id), nil, nil)
}
