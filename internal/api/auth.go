package api

import (
	"context"
	"net/http"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for an Identity carrying the bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	var identity model.Identity
	req := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Register creates a new account and returns its Identity.
func (c *Client) Register(ctx context.Context, name, email, password string) (*model.Identity, error) {
	var identity model.Identity
	req := registerRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Profile returns the Identity behind the current bearer token.
func (c *Client) Profile(ctx context.Context) (*model.Identity, error) {
	var identity model.Identity
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}
