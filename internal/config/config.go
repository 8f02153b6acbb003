package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Dashboard holds configuration for the terminal dashboard.
type Dashboard struct {
	APIBaseURL string `env:"ATTENDANCE_API_URL" envDefault:"http://localhost:8080"`
	StateDir   string `env:"ATTENDANCE_STATE_DIR"`
}

// MockAPI holds configuration for the local development backend.
type MockAPI struct {
	Port          string `env:"MOCKAPI_PORT" envDefault:"8080"`
	JWTSecret     string `env:"MOCKAPI_JWT_SECRET" envDefault:"dev-only-secret"`
	JWTExpiration int    `env:"MOCKAPI_JWT_EXPIRATION" envDefault:"86400"` // seconds
	Admin         struct {
		Name     string `env:"NAME" envDefault:"Administrator"`
		Email    string `env:"EMAIL" envDefault:"admin@example.com"`
		Password string `env:"PASSWORD" envDefault:"admin123"`
	} `envPrefix:"MOCKAPI_ADMIN_"`
}

// LoadDashboard builds dashboard config from environment variables. The
// state directory defaults to ~/.attendance-dashboard when unset.
func LoadDashboard() (*Dashboard, error) {
	cfg := &Dashboard{}
	if err := parse(cfg); err != nil {
		return nil, err
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.StateDir = filepath.Join(home, ".attendance-dashboard")
	}
	return cfg, nil
}

// LoadMockAPI builds mock backend config from environment variables.
func LoadMockAPI() (*MockAPI, error) {
	cfg := &MockAPI{}
	if err := parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) {
			// surface only the first error to keep the log readable
			return aggErr.Errors[0]
		}
		return err
	}
	return nil
}
