package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, secrets)
// - default: Values common across all environments (timeouts, log settings)
//
// Feature flags are read ONLY by the adapter factory; no other layer may
// inspect configuration to decide behavior.
// -----------------------------------------------------------------------------

type Config struct {
	DB       DBConfig
	Backend  BackendConfig
	Features FeatureFlags
	Log      LogConfig
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// BackendConfig points the remote-API cabin adapter at its backend. BaseURL is
// validated by that adapter's constructor, not per call: a missing value is a
// fatal startup error, but only for deployments that select the backend
// provider.
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_API_URL"`
	Timeout time.Duration `envconfig:"BACKEND_API_TIMEOUT" default:"15s"`
}

// FeatureFlags control provider selection. UseBackendCabins switches the Cabin
// port between the row-store adapter (default) and the remote-API adapter.
type FeatureFlags struct {
	UseBackendCabins bool `envconfig:"USE_BACKEND_CABINS" default:"false"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 15 * time.Second,
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
