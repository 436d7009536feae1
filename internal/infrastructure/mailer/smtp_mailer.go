package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"github.com/wneessen/go-mail"
)

const defaultSMTPPort = 587

// SMTPMailer delivers mail through an SMTP relay
type SMTPMailer struct {
	client *mail.Client
	from   string
	logger logger.Logger
}

// NewSMTPMailer creates a mailer from settings; no connection is made until Send
func NewSMTPMailer(settings *config.MailSettings, logger logger.Logger) (*SMTPMailer, error) {
	port := settings.Port
	if port == 0 {
		port = defaultSMTPPort
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(tlsPolicy(settings.TLSPolicy)),
	}
	if settings.SendTimeout > 0 {
		opts = append(opts, mail.WithTimeout(settings.SendTimeout))
	}
	if settings.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(settings.Username),
			mail.WithPassword(settings.Password),
		)
	}

	client, err := mail.NewClient(settings.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPMailer{client: client, from: settings.From, logger: logger}, nil
}

func tlsPolicy(policy string) mail.TLSPolicy {
	switch policy {
	case config.MailTLSOpportunistic:
		return mail.TLSOpportunistic
	case config.MailTLSNone:
		return mail.NoTLS
	default:
		return mail.TLSMandatory
	}
}

// Send delivers msg and waits for the server's answer
func (m *SMTPMailer) Send(ctx context.Context, msg inquiries.Mail) error {
	message, err := m.compose(msg)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info("Sent mail", "subject", msg.Subject, "recipients", len(msg.To), "duration", time.Since(start).String())
	return nil
}

func (m *SMTPMailer) compose(msg inquiries.Mail) (*mail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("mail has no recipients")
	}

	message := mail.NewMsg()
	if err := message.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := message.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := message.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextPlain, msg.Body)
	return message, nil
}
