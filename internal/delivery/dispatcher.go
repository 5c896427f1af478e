// Package delivery decides between real SMTP transmission and the
// local-record fallback, and reports a uniform outcome either way.
package delivery

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/compose"
	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/domain"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// Outcome reports the result of one dispatch attempt.
type Outcome struct {
	Success bool
	Message string
}

const (
	sentMessage     = "Support ticket sent successfully."
	recordedMessage = "Support ticket recorded locally (email delivery is not configured)."
)

// Dispatcher delivers composed tickets. The logger is the operator side
// channel for the unconfigured path; it must never share a stream with the
// protocol responses.
type Dispatcher struct {
	cfg    config.FormConfig
	mailer Mailer
	logger *zap.Logger
}

// NewDispatcher constructs the dispatcher.
func NewDispatcher(cfg config.FormConfig, mailer Mailer, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{cfg: cfg, mailer: mailer, logger: logger}
}

// Dispatch composes the ticket and makes at most one delivery attempt. With
// an incomplete credential pair it performs no network I/O: the rendered
// subject and body go to the side channel and the outcome still reports
// success. With credentials present a transport failure propagates as a
// delivery error instead of downgrading to the record path.
func (d *Dispatcher) Dispatch(ctx context.Context, fields domain.TicketFields) (Outcome, error) {
	subject := compose.Subject(d.cfg.SubjectTemplate, fields)
	body := compose.Body(fields, d.cfg)

	if !d.cfg.Delivery.Auth.Configured() {
		d.logger.Info("email delivery not configured, recording ticket",
			zap.String("subject", subject),
			zap.String("body", body))
		return Outcome{Success: true, Message: recordedMessage}, nil
	}

	msg := Email{
		From:    d.cfg.Delivery.Auth.User,
		To:      d.cfg.SupportEmail,
		ReplyTo: fields[domain.FieldEmail],
		Subject: subject,
		Body:    body,
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		return Outcome{}, apperrors.NewDeliveryError(err)
	}

	d.logger.Info("support ticket delivered",
		zap.String("recipient", msg.To),
		zap.String("subject", subject))
	return Outcome{Success: true, Message: sentMessage}, nil
}
