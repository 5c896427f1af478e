package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/delivery"
	"github.com/spec-kit/support-desk/internal/schema"
)

type stubMailer struct {
	sent []delivery.Email
	err  error
}

func (m *stubMailer) Send(ctx context.Context, msg delivery.Email) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func newService(t *testing.T, cfg config.FormConfig, mailer delivery.Mailer) *SupportService {
	t.Helper()
	return NewSupportService(Dependencies{
		Schema:     schema.Build(cfg),
		Dispatcher: delivery.NewDispatcher(cfg, mailer, zap.NewNop()),
		Logger:     zap.NewNop(),
	})
}

func TestSubmitUnconfiguredDelivery(t *testing.T) {
	mailer := &stubMailer{}
	svc := newService(t, config.DefaultForm(), mailer)

	result := svc.Submit(context.Background(), map[string]any{
		"name":  "Ada",
		"issue": "Login broken",
	})

	if result.Status != StatusOK {
		t.Fatalf("expected ok, got %q (%s)", result.Status, result.Message)
	}
	if !strings.Contains(result.Message, "recorded") {
		t.Fatalf("message should mention recording, got %q", result.Message)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("unconfigured submission performed %d sends", len(mailer.sent))
	}

	ticket := result.Ticket
	if ticket == nil {
		t.Fatal("successful submission must echo the ticket")
	}
	if ticket.Name != "Ada" || ticket.Issue != "Login broken" {
		t.Fatalf("unexpected echo %+v", ticket)
	}
	if ticket.Priority != "Medium" {
		t.Fatalf("priority should default to Medium, got %q", ticket.Priority)
	}
	if ticket.Category != "General Inquiry" {
		t.Fatalf("category should default to General Inquiry, got %q", ticket.Category)
	}
	if _, err := time.Parse(time.RFC3339, ticket.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC 3339: %q", ticket.Timestamp)
	}
}

func TestSubmitMissingIssueFailsBeforeDispatch(t *testing.T) {
	mailer := &stubMailer{}
	cfg := config.DefaultForm()
	cfg.Delivery.Auth = config.SMTPAuth{User: "desk@example.com", Pass: "hunter2"}
	svc := newService(t, cfg, mailer)

	result := svc.Submit(context.Background(), map[string]any{"name": "Ada"})

	if result.Status != StatusError {
		t.Fatalf("expected error status, got %q", result.Status)
	}
	if result.Ticket != nil {
		t.Fatal("error result must not echo a ticket")
	}
	if len(mailer.sent) != 0 {
		t.Fatal("validation failure must not reach the mailer")
	}
}

func TestSubmitConfiguredDelivery(t *testing.T) {
	mailer := &stubMailer{}
	cfg := config.DefaultForm()
	cfg.Delivery.Auth = config.SMTPAuth{User: "desk@example.com", Pass: "hunter2"}
	cfg.SupportEmail = "support@globex.test"
	svc := newService(t, cfg, mailer)

	result := svc.Submit(context.Background(), map[string]any{
		"name":     "Ada",
		"issue":    "Login broken",
		"priority": "High",
		"email":    "ada@example.com",
	})

	if result.Status != StatusOK {
		t.Fatalf("expected ok, got %q (%s)", result.Status, result.Message)
	}
	if result.Message != "Support ticket sent successfully." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected exactly one send, got %d", len(mailer.sent))
	}
	if mailer.sent[0].To != "support@globex.test" {
		t.Fatalf("unexpected recipient %q", mailer.sent[0].To)
	}
	if mailer.sent[0].ReplyTo != "ada@example.com" {
		t.Fatalf("unexpected reply-to %q", mailer.sent[0].ReplyTo)
	}
	if result.Ticket.Priority != "High" {
		t.Fatalf("submitted priority should echo back, got %q", result.Ticket.Priority)
	}
}

func TestSubmitTransportFailureBecomesErrorPayload(t *testing.T) {
	mailer := &stubMailer{err: errors.New("535 authentication rejected")}
	cfg := config.DefaultForm()
	cfg.Delivery.Auth = config.SMTPAuth{User: "desk@example.com", Pass: "wrong"}
	svc := newService(t, cfg, mailer)

	result := svc.Submit(context.Background(), map[string]any{
		"name":  "Ada",
		"issue": "Login broken",
	})

	if result.Status != StatusError {
		t.Fatalf("expected error status, got %q", result.Status)
	}
	if result.Message != "535 authentication rejected" {
		t.Fatalf("payload should carry the transport failure message, got %q", result.Message)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("failure must not be retried, got %d sends", len(mailer.sent))
	}
}
