package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// RegisterRequest is the self-service registration body.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the credential exchange body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req RegisterRequest
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
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to register user")
	}
	user := s.store.CreateUser(req.Name, req.Email, hash, model.RoleUser)

	identity, err := s.identityFor(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to register user")
	}
	return c.JSON(http.StatusCreated, identity)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, ok := s.store.UserByEmail(req.Email)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	identity, err := s.identityFor(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to login")
	}
	return c.JSON(http.StatusOK, identity)
}

func (s *Server) handleProfile(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (s *Server) identityFor(user *userRecord) (*model.Identity, error) {
	token, err := s.issuer.issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &model.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}
