package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds token signing and password hashing settings
type AuthSettings struct {
	JWTSecret         string        `yaml:"jwt_secret" env:"JWT_SECRET" validate:"required,min=32"`
	Issuer            string        `yaml:"issuer" env:"JWT_ISSUER" validate:"required"`
	TokenTTL          time.Duration `yaml:"token_ttl" env:"JWT_TTL" validate:"required,gt=0"`
	BcryptCost        int           `yaml:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
	BootstrapUsername string        `yaml:"bootstrap_username" env:"ADMIN_USERNAME"`
	BootstrapEmail    string        `yaml:"bootstrap_email" env:"ADMIN_EMAIL" validate:"omitempty,email"`
	BootstrapPassword string        `yaml:"bootstrap_password" env:"ADMIN_PASSWORD" validate:"required_with=BootstrapUsername,omitempty,min=8"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}
