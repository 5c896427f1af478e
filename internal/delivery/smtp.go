package delivery

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/spec-kit/support-desk/internal/config"
)

// SMTPMailer sends mail through the configured SMTP endpoint.
type SMTPMailer struct {
	settings config.DeliverySettings
}

// NewSMTPMailer constructs the mailer.
func NewSMTPMailer(settings config.DeliverySettings) *SMTPMailer {
	return &SMTPMailer{settings: settings}
}

// Send performs one blocking SMTP round-trip. There is no internal timeout;
// cancellation is the caller's responsibility.
func (m *SMTPMailer) Send(ctx context.Context, msg Email) error {
	message := gomail.NewMessage()
	message.SetHeader("From", msg.From)
	message.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		message.SetHeader("Reply-To", msg.ReplyTo)
	}
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.Body)

	dialer := gomail.NewDialer(m.settings.Host, m.settings.Port, m.settings.Auth.User, m.settings.Auth.Pass)
	dialer.SSL = m.settings.Secure

	return dialer.DialAndSend(message)
}
