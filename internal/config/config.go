package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/cardledger/internal/database"
)

// Database modes selectable at startup.
const (
	ModePostgres = "postgres"
	ModeEmbedded = "embedded"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"cardledger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Mode     string `envconfig:"DB_MODE" default:"postgres"`
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"cardledger"`
		// Path is the database file used in embedded mode.
		Path string `envconfig:"DB_PATH" default:"./cardledger.db"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
	}

	Import struct {
		MaxFileSize int64 `envconfig:"IMPORT_MAX_FILE_SIZE" default:"10485760"`
		UploadLimit int64 `envconfig:"IMPORT_UPLOAD_LIMIT" default:"52428800"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}
}

// Driver returns the database/sql driver name for the configured mode.
func (c *Config) Driver() string {
	if c.DB.Mode == ModeEmbedded {
		return database.DriverSQLite
	}

	return database.DriverPostgres
}

// ConnectionString returns the DSN for the configured mode.
func (c *Config) ConnectionString() string {
	if c.DB.Mode == ModeEmbedded {
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", c.DB.Path)
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.DB.Mode {
	case ModePostgres, ModeEmbedded:
	default:
		return nil, fmt.Errorf("invalid DB_MODE %q: expected %q or %q", cfg.DB.Mode, ModePostgres, ModeEmbedded)
	}

	return &cfg, nil
}
