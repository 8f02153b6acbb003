package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajputritesh1907/attendanceFrontend/internal/api"
	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// fakeAPI scripts the admin endpoints and counts list fetches.
type fakeAPI struct {
	users    []model.Personnel
	usersErr error
	tasks    []model.Task
	tasksErr error

	createUserErr error
	deleteUserErr error
	assignErr     error
	deleteTaskErr error

	userCalls    int
	taskCalls    int
	deletedUsers []string
	deletedTasks []string
}

func (f *fakeAPI) Users(ctx context.Context) ([]model.Personnel, error) {
	f.userCalls++
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeAPI) CreateUser(ctx context.Context, req api.CreateUserRequest) (*model.Personnel, error) {
	if f.createUserErr != nil {
		return nil, f.createUserErr
	}
	created := model.Personnel{ID: "server-id", Name: req.Name, Email: req.Email, Role: req.Role}
	f.users = append(f.users, created)
	return &created, nil
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id string) error {
	if f.deleteUserErr != nil {
		return f.deleteUserErr
	}
	f.deletedUsers = append(f.deletedUsers, id)
	return nil
}

func (f *fakeAPI) AdminTasks(ctx context.Context) ([]model.Task, error) {
	f.taskCalls++
	if f.tasksErr != nil {
		return nil, f.tasksErr
	}
	return f.tasks, nil
}

func (f *fakeAPI) AssignTask(ctx context.Context, req api.AssignTaskRequest) (*model.Task, error) {
	if f.assignErr != nil {
		return nil, f.assignErr
	}
	created := model.Task{ID: "server-task", Title: req.Title, Status: model.TaskPending}
	f.tasks = append(f.tasks, created)
	return &created, nil
}

func (f *fakeAPI) DeleteAdminTask(ctx context.Context, id string) error {
	if f.deleteTaskErr != nil {
		return f.deleteTaskErr
	}
	f.deletedTasks = append(f.deletedTasks, id)
	return nil
}

var adminSelf = &model.Identity{ID: "admin-1", Name: "Boss", Role: model.RoleAdmin}

func seededAPI() *fakeAPI {
	return &fakeAPI{
		users: []model.Personnel{
			{ID: "admin-1", Name: "Boss", Email: "boss@example.com", Role: model.RoleAdmin},
			{ID: "u-1", Name: "Jane", Email: "jane@example.com", Role: model.RoleUser},
			{ID: "u-2", Name: "John", Email: "john@example.com", Role: model.RoleUser},
		},
		tasks: []model.Task{
			{ID: "t-1", Title: "Audit", Status: model.TaskInProgress},
			{ID: "t-2", Title: "Report", Status: model.TaskCompleted},
		},
	}
}

func TestConsole_Load(t *testing.T) {
	t.Run("both halves resolve", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)

		require.NoError(t, c.Load(context.Background()))
		assert.Len(t, c.Users(), 3)
		assert.Len(t, c.Tasks(), 2)
	})

	t.Run("one rejection keeps partial data", func(t *testing.T) {
		f := seededAPI()
		f.tasksErr = errors.New("boom")
		c := New(f, adminSelf)

		assert.ErrorIs(t, c.Load(context.Background()), ErrLoadFailed)
		assert.Len(t, c.Users(), 3)
		assert.Empty(t, c.Tasks())
	})

	t.Run("both rejections still one error", func(t *testing.T) {
		f := seededAPI()
		f.usersErr = errors.New("boom")
		f.tasksErr = errors.New("boom")
		c := New(f, adminSelf)

		assert.ErrorIs(t, c.Load(context.Background()), ErrLoadFailed)
	})
}

func TestConsole_Assignable(t *testing.T) {
	f := seededAPI()
	c := New(f, adminSelf)
	require.NoError(t, c.Load(context.Background()))

	assignable := c.Assignable()
	require.Len(t, assignable, 2)
	for _, u := range assignable {
		assert.Equal(t, model.RoleUser, u.Role)
	}
}

func TestConsole_AddUser(t *testing.T) {
	t.Run("refetches roster on success", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))
		require.Equal(t, 1, f.userCalls)

		form := UserForm{Name: "New", Email: "new@example.com", Password: "secret", Role: model.RoleUser}
		require.NoError(t, c.AddUser(context.Background(), form))

		// creation goes back to the server for the authoritative list
		assert.Equal(t, 2, f.userCalls)
		require.Len(t, c.Users(), 4)
		assert.Equal(t, "server-id", c.Users()[3].ID)
	})

	t.Run("rejects invalid form locally", func(t *testing.T) {
		tests := []struct {
			name string
			form UserForm
		}{
			{name: "missing name", form: UserForm{Email: "a@b.c", Password: "x", Role: model.RoleUser}},
			{name: "bad email", form: UserForm{Name: "A", Email: "not-an-email", Password: "x", Role: model.RoleUser}},
			{name: "missing password", form: UserForm{Name: "A", Email: "a@b.c", Role: model.RoleUser}},
			{name: "unknown role", form: UserForm{Name: "A", Email: "a@b.c", Password: "x", Role: model.Role("root")}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := seededAPI()
				c := New(f, adminSelf)

				err := c.AddUser(context.Background(), tt.form)
				var verr validator.ValidationErrors
				assert.ErrorAs(t, err, &verr)
				assert.Zero(t, f.userCalls)
			})
		}
	})
}

func TestConsole_RemoveUser(t *testing.T) {
	approve := func() bool { return true }

	t.Run("removes locally without refetch", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))
		require.Equal(t, 1, f.userCalls)

		require.NoError(t, c.RemoveUser(context.Background(), "u-1", approve))
		assert.Equal(t, []string{"u-1"}, f.deletedUsers)
		assert.Equal(t, 1, f.userCalls) // no roster refetch on delete
		require.Len(t, c.Users(), 2)
		for _, u := range c.Users() {
			assert.NotEqual(t, "u-1", u.ID)
		}
	})

	t.Run("refuses self removal", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))

		assert.ErrorIs(t, c.RemoveUser(context.Background(), adminSelf.ID, approve), ErrSelfDelete)
		assert.Empty(t, f.deletedUsers)
		assert.Len(t, c.Users(), 3)
	})

	t.Run("declined confirmation is a no-op", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))

		require.NoError(t, c.RemoveUser(context.Background(), "u-1", func() bool { return false }))
		assert.Empty(t, f.deletedUsers)
		assert.Len(t, c.Users(), 3)
	})

	t.Run("server failure keeps roster", func(t *testing.T) {
		f := seededAPI()
		f.deleteUserErr = errors.New("boom")
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))

		assert.Error(t, c.RemoveUser(context.Background(), "u-1", approve))
		assert.Len(t, c.Users(), 3)
	})
}

func TestConsole_Assign(t *testing.T) {
	validForm := func() TaskForm {
		return TaskForm{
			UserID:      "u-1",
			Title:       "Sweep",
			Description: "Sweep the floor",
			DueDate:     time.Now().Add(48 * time.Hour),
		}
	}

	t.Run("refetches tasks on success", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))
		require.Equal(t, 1, f.taskCalls)

		require.NoError(t, c.Assign(context.Background(), validForm()))
		assert.Equal(t, 2, f.taskCalls)
		assert.Len(t, c.Tasks(), 3)
	})

	t.Run("rejects incomplete form locally", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)

		form := validForm()
		form.DueDate = time.Time{}
		err := c.Assign(context.Background(), form)

		var verr validator.ValidationErrors
		assert.ErrorAs(t, err, &verr)
		assert.Zero(t, f.taskCalls)
	})

	t.Run("server rejection surfaces its message", func(t *testing.T) {
		f := seededAPI()
		f.assignErr = &api.APIError{StatusCode: 400, Message: "Due date must be in the future"}
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))

		err := c.Assign(context.Background(), validForm())
		require.Error(t, err)
		assert.Equal(t, "Due date must be in the future", api.Message(err, "Deployment failed"))
		assert.Equal(t, 1, f.taskCalls) // no refetch after rejection
	})
}

func TestConsole_RemoveTask(t *testing.T) {
	approve := func() bool { return true }

	t.Run("removes locally without refetch", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))
		require.Equal(t, 1, f.taskCalls)

		require.NoError(t, c.RemoveTask(context.Background(), "t-1", approve))
		assert.Equal(t, []string{"t-1"}, f.deletedTasks)
		assert.Equal(t, 1, f.taskCalls)
		require.Len(t, c.Tasks(), 1)
		assert.Equal(t, "t-2", c.Tasks()[0].ID)
	})

	t.Run("declined confirmation is a no-op", func(t *testing.T) {
		f := seededAPI()
		c := New(f, adminSelf)
		require.NoError(t, c.Load(context.Background()))

		require.NoError(t, c.RemoveTask(context.Background(), "t-1", func() bool { return false }))
		assert.Empty(t, f.deletedTasks)
		assert.Len(t, c.Tasks(), 2)
	})
}

func TestConsole_Metrics(t *testing.T) {
	f := seededAPI()
	c := New(f, adminSelf)
	require.NoError(t, c.Load(context.Background()))

	m := c.Metrics()
	assert.Equal(t, 3, m.Personnel)
	assert.Equal(t, 2, m.Operations)
	assert.Equal(t, 50, m.SuccessRate)

	empty := New(&fakeAPI{}, adminSelf)
	assert.Equal(t, Metrics{}, empty.Metrics())
}
