package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// TLS policies understood by the SMTP mailer
const (
	MailTLSMandatory     = "mandatory"
	MailTLSOpportunistic = "opportunistic"
	MailTLSNone          = "none"
)

// MailSettings configures outgoing email
type MailSettings struct {
	Enabled       bool          `yaml:"enabled" env:"MAIL_ENABLED"`
	Host          string        `yaml:"host" env:"SMTP_HOST" validate:"required_if=Enabled true"`
	Port          int           `yaml:"port" env:"SMTP_PORT" validate:"omitempty,min=1,max=65535"`
	Username      string        `yaml:"username" env:"SMTP_USERNAME"`
	Password      string        `yaml:"password" env:"SMTP_PASSWORD"`
	TLSPolicy     string        `yaml:"tls_policy" env:"SMTP_TLS_POLICY" validate:"omitempty,oneof=mandatory opportunistic none"`
	From          string        `yaml:"from" env:"MAIL_FROM" validate:"required_if=Enabled true,omitempty,email"`
	NotifyAddress string        `yaml:"notify_address" env:"MAIL_NOTIFY_ADDRESS" validate:"omitempty,email"`
	SendTimeout   time.Duration `yaml:"send_timeout" validate:"gte=0"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailSettings: %w", err)
	}
	return nil
}
