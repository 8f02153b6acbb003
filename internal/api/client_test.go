package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// staticToken is a fixed TokenSource.
type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_BearerInterceptor(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	t.Run("attaches token on every request", func(t *testing.T) {
		c := New(srv.URL, staticToken("token-123"))
		_, err := c.Tasks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer token-123", gotAuth)
	})

	t.Run("omits header when token empty", func(t *testing.T) {
		c := New(srv.URL, staticToken(""))
		_, err := c.Tasks(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("omits header when source nil", func(t *testing.T) {
		c := New(srv.URL, nil)
		_, err := c.Tasks(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantKind   error
		wantMsg    string
	}{
		{name: "unauthorized", statusCode: 401, body: `{"message":"Invalid email or password"}`, wantKind: ErrAuth, wantMsg: "Invalid email or password"},
		{name: "forbidden", statusCode: 403, body: `{"message":"Admin access required"}`, wantKind: ErrAuth, wantMsg: "Admin access required"},
		{name: "bad request", statusCode: 400, body: `{"message":"Due date must be in the future"}`, wantKind: ErrValidation, wantMsg: "Due date must be in the future"},
		{name: "unprocessable", statusCode: 422, body: `{"message":"Invalid status"}`, wantKind: ErrValidation, wantMsg: "Invalid status"},
		{name: "not found", statusCode: 404, body: `{"message":"Task not found"}`, wantKind: ErrNotFound, wantMsg: "Task not found"},
		{name: "non-json body", statusCode: 400, body: "Bad Request", wantKind: ErrValidation, wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, nil)
			_, err := c.Tasks(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}

	t.Run("server error carries no category", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		_, err := c.Tasks(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrAuth)
		assert.NotErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, nil)
	_, err := c.Tasks(context.Background())

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{name: "server message wins", err: &APIError{StatusCode: 400, Message: "Due date must be in the future"}, fallback: "Deployment failed", want: "Due date must be in the future"},
		{name: "empty message falls back", err: &APIError{StatusCode: 500}, fallback: "Something broke", want: "Something broke"},
		{name: "network error falls back", err: &NetworkError{Err: errors.New("refused")}, fallback: "Login failed", want: "Login failed"},
		{name: "plain error falls back", err: errors.New("boom"), fallback: "Failed", want: "Failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err, tt.fallback))
		})
	}
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]string{
			"_id": "u-1", "name": "Jane", "email": body["email"], "role": "user", "token": "token-123",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	identity, err := c.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, &model.Identity{ID: "u-1", Name: "Jane", Email: "jane@example.com", Role: model.RoleUser, Token: "token-123"}, identity)
}

func TestClient_TodayAttendance(t *testing.T) {
	t.Run("null body means no record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("null"))
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		rec, err := c.TodayAttendance(context.Background())
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("open record decodes", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"_id": "a-1", "date": "2026-03-10", "checkIn": checkIn,
			})
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		rec, err := c.TodayAttendance(context.Background())
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.True(t, rec.CheckIn.Equal(checkIn))
		assert.Nil(t, rec.CheckOut)
	})
}

func TestClient_UpdateTaskStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tasks/t-1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "completed", body["status"])

		json.NewEncoder(w).Encode(map[string]string{"_id": "t-1", "status": body["status"]})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("token-123"))
	task, err := c.UpdateTaskStatus(context.Background(), "t-1", model.TaskCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.TaskCompleted, task.Status)
}
