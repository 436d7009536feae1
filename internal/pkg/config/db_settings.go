package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings for the relational database
type DatabaseSettings struct {
	Type            string        `yaml:"type" env:"DATABASE_TYPE" validate:"required,oneof=postgres sqlite"`
	DSN             string        `yaml:"dsn" env:"DATABASE_URL" validate:"required_if=Type postgres"`
	DBName          string        `yaml:"name" env:"DATABASE_NAME"`
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" validate:"gte=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
