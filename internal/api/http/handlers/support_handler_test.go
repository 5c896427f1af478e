package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/delivery"
	"github.com/spec-kit/support-desk/internal/schema"
	"github.com/spec-kit/support-desk/internal/service"
)

type stubMailer struct {
	sent []delivery.Email
	err  error
}

func (m *stubMailer) Send(ctx context.Context, msg delivery.Email) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func newApp(t *testing.T, cfg config.FormConfig, mailer delivery.Mailer) *fiber.App {
	t.Helper()
	svc := service.NewSupportService(service.Dependencies{
		Schema:     schema.Build(cfg),
		Dispatcher: delivery.NewDispatcher(cfg, mailer, zap.NewNop()),
		Logger:     zap.NewNop(),
	})
	app := fiber.New()
	app.Post("/tools/customer_support", NewSupportHandler(svc).Submit)
	return app
}

func submit(t *testing.T, app *fiber.App, body string) (int, service.Result) {
	t.Helper()
	req := httptest.NewRequest("POST", "/tools/customer_support", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer resp.Body.Close()

	var result service.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

func TestSubmitOK(t *testing.T) {
	app := newApp(t, config.DefaultForm(), &stubMailer{})

	status, result := submit(t, app, `{"name":"Ada","issue":"Login broken"}`)
	if status != fiber.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if result.Status != service.StatusOK {
		t.Fatalf("expected ok payload, got %q (%s)", result.Status, result.Message)
	}
}

func TestSubmitValidationFailureMapsToBadRequest(t *testing.T) {
	app := newApp(t, config.DefaultForm(), &stubMailer{})

	status, result := submit(t, app, `{"name":"Ada"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("validation failure should map to 400, got %d", status)
	}
	if result.Status != service.StatusError {
		t.Fatalf("expected error payload, got %q", result.Status)
	}
}

func TestSubmitDeliveryFailureMapsToBadGateway(t *testing.T) {
	cfg := config.DefaultForm()
	cfg.Delivery.Auth = config.SMTPAuth{User: "desk@example.com", Pass: "hunter2"}
	app := newApp(t, cfg, &stubMailer{err: errors.New("connection refused")})

	status, result := submit(t, app, `{"name":"Ada","issue":"Login broken"}`)
	if status != fiber.StatusBadGateway {
		t.Fatalf("delivery failure should map to 502, got %d", status)
	}
	if result.Status != service.StatusError {
		t.Fatalf("expected error payload, got %q", result.Status)
	}
	if result.Message != "connection refused" {
		t.Fatalf("payload should carry the transport failure, got %q", result.Message)
	}
}
