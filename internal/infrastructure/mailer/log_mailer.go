package mailer

import (
	"context"
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

// LogMailer writes mail to the log instead of sending it
type LogMailer struct {
	logger logger.Logger
}

// NewLogMailer creates a mailer for environments without SMTP
func NewLogMailer(logger logger.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs msg and always succeeds
func (m *LogMailer) Send(_ context.Context, msg inquiries.Mail) error {
	m.logger.Info("Mail delivery disabled, logging message",
		"to", strings.Join(msg.To, ","),
		"subject", msg.Subject,
	)
	return nil
}
