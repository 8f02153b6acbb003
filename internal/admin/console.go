// Package admin models the admin console: roster and task management over
// the /admin endpoints. Each list is a private, refetchable copy; creation
// paths refetch from the server while deletion paths remove locally.
package admin

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rajputritesh1907/attendanceFrontend/internal/api"
	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

var (
	// ErrLoadFailed is the combined notice when either half of the initial
	// load rejects. Whatever partial data resolved is kept.
	ErrLoadFailed = errors.New("admin: failed to sync data")
	// ErrSelfDelete blocks an admin from removing their own roster entry.
	// This is a UI restriction, not a security boundary.
	ErrSelfDelete = errors.New("admin: cannot remove own account")
)

// API is the slice of the gateway client the console needs.
type API interface {
	Users(ctx context.Context) ([]model.Personnel, error)
	CreateUser(ctx context.Context, req api.CreateUserRequest) (*model.Personnel, error)
	DeleteUser(ctx context.Context, id string) error
	AdminTasks(ctx context.Context) ([]model.Task, error)
	AssignTask(ctx context.Context, req api.AssignTaskRequest) (*model.Task, error)
	DeleteAdminTask(ctx context.Context, id string) error
}

// UserForm is the personnel-creation form. Field checks mirror the required
// inputs of the console form; the server revalidates everything.
type UserForm struct {
	Name     string     `validate:"required"`
	Email    string     `validate:"required,email"`
	Password string     `validate:"required"`
	Role     model.Role `validate:"required,oneof=user admin"`
}

// TaskForm is the task-assignment form.
type TaskForm struct {
	UserID      string    `validate:"required"`
	Title       string    `validate:"required"`
	Description string    `validate:"required"`
	DueDate     time.Time `validate:"required"`
}

// Console drives the admin views over private copies of both lists.
type Console struct {
	api      API
	self     *model.Identity
	validate *validator.Validate

	users []model.Personnel
	tasks []model.Task
}

// New creates a console for the signed-in admin.
func New(apiClient API, self *model.Identity) *Console {
	return &Console{
		api:      apiClient,
		self:     self,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load fetches roster and tasks concurrently. If either fetch rejects, one
// combined ErrLoadFailed fires and loading ends with whatever partial data
// did resolve; no distinction is made between which half failed.
func (c *Console) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	var usersErr, tasksErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, err := c.api.Users(ctx)
		if err != nil {
			usersErr = err
			return
		}
		c.users = users
	}()
	go func() {
		defer wg.Done()
		tasks, err := c.api.AdminTasks(ctx)
		if err != nil {
			tasksErr = err
			return
		}
		c.tasks = tasks
	}()
	wg.Wait()

	if usersErr != nil || tasksErr != nil {
		return ErrLoadFailed
	}
	return nil
}

// Users returns the current roster copy.
func (c *Console) Users() []model.Personnel { return c.users }

// Tasks returns the current task copy.
func (c *Console) Tasks() []model.Task { return c.tasks }

// Assignable lists roster entries tasks may be assigned to.
func (c *Console) Assignable() []model.Personnel {
	var out []model.Personnel
	for _, u := range c.users {
		if u.Role == model.RoleUser {
			out = append(out, u)
		}
	}
	return out
}

// AddUser submits a new account and, on success, refetches the full roster so
// the view reflects server-assigned identifiers.
func (c *Console) AddUser(ctx context.Context, form UserForm) error {
	if err := c.validate.Struct(form); err != nil {
		return err
	}
	req := api.CreateUserRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	}
	if _, err := c.api.CreateUser(ctx, req); err != nil {
		return err
	}
	users, err := c.api.Users(ctx)
	if err != nil {
		return err
	}
	c.users = users
	return nil
}

// RemoveUser deletes a roster entry after confirmation and removes it from
// the local list directly, without a refetch. Removing oneself is refused.
func (c *Console) RemoveUser(ctx context.Context, id string, confirm func() bool) error {
	if c.self != nil && id == c.self.ID {
		return ErrSelfDelete
	}
	if confirm != nil && !confirm() {
		return nil
	}
	if err := c.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	kept := c.users[:0:0]
	for _, u := range c.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	c.users = kept
	return nil
}

// Assign submits a task assignment and, on success, refetches the full task
// list.
func (c *Console) Assign(ctx context.Context, form TaskForm) error {
	if err := c.validate.Struct(form); err != nil {
		return err
	}
	req := api.AssignTaskRequest{
		UserID:      form.UserID,
		Title:       form.Title,
		Description: form.Description,
		DueDate:     form.DueDate,
	}
	if _, err := c.api.AssignTask(ctx, req); err != nil {
		return err
	}
	return c.RefreshTasks(ctx)
}

// RemoveTask deletes a task after confirmation and removes it from the local
// list directly.
func (c *Console) RemoveTask(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := c.api.DeleteAdminTask(ctx, id); err != nil {
		return err
	}
	kept := c.tasks[:0:0]
	for _, t := range c.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.tasks = kept
	return nil
}

// RefreshTasks refetches the task list; the monitoring tab triggers this on
// selection.
func (c *Console) RefreshTasks(ctx context.Context) error {
	tasks, err := c.api.AdminTasks(ctx)
	if err != nil {
		return err
	}
	c.tasks = tasks
	return nil
}

// Metrics is the analytics summary shown beside the tabs.
type Metrics struct {
	Personnel   int
	Operations  int
	SuccessRate int // rounded percent of completed tasks
}

// Metrics summarizes the held lists.
func (c *Console) Metrics() Metrics {
	m := Metrics{Personnel: len(c.users), Operations: len(c.tasks)}
	if len(c.tasks) == 0 {
		return m
	}
	completed := 0
	for _, t := range c.tasks {
		if t.Status == model.TaskCompleted {
			completed++
		}
	}
	m.SuccessRate = int(float64(completed)/float64(len(c.tasks))*100 + 0.5)
	return m
}
