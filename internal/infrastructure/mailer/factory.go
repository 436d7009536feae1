package mailer

import (
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

// NewMailer returns the SMTP mailer when mail is enabled and the log mailer otherwise
func NewMailer(settings *config.MailSettings, logger logger.Logger) (inquiries.Mailer, error) {
	if !settings.Enabled {
		return NewLogMailer(logger), nil
	}
	m, err := NewSMTPMailer(settings, logger)
	if err != nil {
		return nil, err
	}
	return m, nil
}
