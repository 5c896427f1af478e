package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/delivery"
	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/schema"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// Result is the structured payload returned to the tool caller. HTTPStatus
// is transport guidance for the REST surface and never serialized; zero
// means OK.
type Result struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Ticket     *TicketEcho `json:"ticket,omitempty"`
	HTTPStatus int         `json:"-"`
}

// TicketEcho echoes the submitted ticket back to the caller.
type TicketEcho struct {
	Name      string `json:"name"`
	Issue     string `json:"issue"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
}

// StatusOK and StatusError are the only result statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// SupportService implements the customer_support operation: validate the raw
// submission, compose and dispatch the ticket, and build the result payload.
type SupportService struct {
	schema     schema.Schema
	dispatcher *delivery.Dispatcher
	logger     *zap.Logger
}

// Dependencies bundles collaborators for the support service.
type Dependencies struct {
	Schema     schema.Schema
	Dispatcher *delivery.Dispatcher
	Logger     *zap.Logger
}

// NewSupportService constructs the service.
func NewSupportService(deps Dependencies) *SupportService {
	return &SupportService{
		schema:     deps.Schema,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Submit processes one ticket submission. It never panics and never returns
// a Go error: every failure resolves to a Result with error status, so the
// transport boundary only ever serializes a payload.
func (s *SupportService) Submit(ctx context.Context, raw map[string]any) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during ticket submission", zap.Any("panic", r))
			result = errorResult(fmt.Errorf("internal error: %v", r))
		}
	}()

	fields, err := s.schema.Validate(raw)
	if err != nil {
		return errorResult(err)
	}

	outcome, err := s.dispatcher.Dispatch(ctx, fields)
	if err != nil {
		s.logger.Warn("ticket dispatch failed", zap.Error(err))
		return errorResult(err)
	}

	submissionID := uuid.NewString()
	s.logger.Info("support ticket submitted",
		zap.String("submission_id", submissionID),
		zap.String("name", fields[domain.FieldName]))

	return Result{
		Status:  StatusOK,
		Message: outcome.Message,
		Ticket: &TicketEcho{
			Name:      fields[domain.FieldName],
			Issue:     fields[domain.FieldIssue],
			Priority:  valueOr(fields, domain.FieldPriority, domain.DefaultPriority),
			Category:  valueOr(fields, domain.FieldCategory, domain.DefaultCategory),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func errorResult(err error) Result {
	domainErr := apperrors.ToDomainError(err)
	return Result{Status: StatusError, Message: domainErr.Message, HTTPStatus: domainErr.HTTPStatus}
}

func valueOr(fields domain.TicketFields, key, fallback string) string {
	if fields.Has(key) {
		return fields[key]
	}
	return fallback
}
