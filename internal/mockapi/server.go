// Package mockapi is an in-memory double of the attendance backend, exposing
// the exact HTTP contract the dashboard consumes. It exists for local
// development and as the server side of the end-to-end tests; it is not a
// production backend.
package mockapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajputritesh1907/attendanceFrontend/internal/config"
	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// Server bundles the Echo instance, the in-memory store, and the token
// issuer.
type Server struct {
	Echo *echo.Echo

	cfg    *config.MockAPI
	store  *Store
	issuer *tokenIssuer
}

// New builds a mock backend seeded with the configured admin account.
func New(cfg *config.MockAPI) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Validator = &CustomValidator{validator: validator.New()}

	s := &Server{
		Echo:   e,
		cfg:    cfg,
		store:  NewStore(),
		issuer: newTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiration)*time.Second),
	}
	if err := s.seedAdmin(); err != nil {
		return nil, err
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) seedAdmin() error {
	hash, err := hashPassword(s.cfg.Admin.Password)
	if err != nil {
		return err
	}
	s.store.CreateUser(s.cfg.Admin.Name, s.cfg.Admin.Email, hash, model.RoleAdmin)
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Server) registerRoutes() {
	e := s.Echo

	e.POST("/auth/register", s.handleRegister)
	e.POST("/auth/login", s.handleLogin)

	authed := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(authClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		},
	}))

	authed.GET("/auth/profile", s.handleProfile)

	authed.POST("/attendance/check-in", s.handleCheckIn)
	authed.POST("/attendance/check-out", s.handleCheckOut)
	authed.GET("/attendance/today", s.handleToday)
	authed.GET("/attendance/history", s.handleHistory)

	authed.GET("/tasks", s.handleMyTasks)
	authed.PUT("/tasks/:id", s.handleUpdateTask)
	authed.DELETE("/tasks/:id", s.handleDeleteTask)

	admin := authed.Group("/admin", s.requireAdmin)
	admin.GET("/users", s.handleListUsers)
	admin.POST("/users", s.handleCreateUser)
	admin.DELETE("/users/:id", s.handleDeleteUser)
	admin.GET("/tasks", s.handleListTasks)
	admin.POST("/tasks", s.handleAssignTask)
	admin.DELETE("/tasks/:id", s.handleDeleteAdminTask)
}

// currentUser resolves the bearer token's account. Tokens for deleted
// accounts are rejected.
func (s *Server) currentUser(c echo.Context) (*userRecord, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	user, ok := s.store.UserByID(claims.Subject)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return user, nil
}

func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := s.currentUser(c)
		if err != nil {
			return err
		}
		if user.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
