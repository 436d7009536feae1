package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RestConfig is the root configuration of the REST API service
type RestConfig struct {
	Port           string           `yaml:"port" env:"PORT" validate:"required,numeric"`
	AllowedOrigins []string         `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" validate:"required,min=1"`
	RequestTimeout time.Duration    `yaml:"request_timeout" validate:"gte=0"`
	Fallback       FallbackSettings `yaml:"fallback"`
	Database       DatabaseSettings `yaml:"database"`
	Logger         LoggerSettings   `yaml:"logger"`
	Auth           AuthSettings     `yaml:"auth"`
	Media          MediaSettings    `yaml:"media"`
	Mail           MailSettings     `yaml:"mail"`
}

// FallbackSettings toggles serving embedded content when the database is unreachable
type FallbackSettings struct {
	Enabled bool `yaml:"enabled" env:"FALLBACK_ENABLED"`
}

// DefaultRestConfig returns the settings used for any key absent from the file and environment
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port:           "5000",
		AllowedOrigins: []string{"http://localhost:3000"},
		RequestTimeout: 30 * time.Second,
		Fallback:       FallbackSettings{Enabled: true},
		Database: DatabaseSettings{
			Type:            SqliteDbType,
			DSN:             "buccusa.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Auth: AuthSettings{
			Issuer:     "buccusa-api",
			TokenTTL:   24 * time.Hour,
			BcryptCost: 12,
		},
		Media: MediaSettings{
			Provider:       LocalMediaProvider,
			MaxUploadBytes: 10 << 20,
			AllowedTypes:   []string{"image/"},
			LocalDir:       "uploads",
			PublicBaseURL:  "http://localhost:5000/uploads",
			Folder:         "buccusa",
		},
		Mail: MailSettings{
			Port:        587,
			TLSPolicy:   MailTLSMandatory,
			SendTimeout: 15 * time.Second,
		},
	}
}

// InitializeRestConfig loads the configuration file at path (if present), applies
// environment overrides and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg := DefaultRestConfig()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// environment-only configuration
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the root settings and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.StructPartial(c, "Port", "AllowedOrigins", "RequestTimeout"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	for _, s := range []interface{ Validate() error }{&c.Database, &c.Logger, &c.Auth, &c.Media, &c.Mail} {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
