package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-desk/internal/api/dto"
	"github.com/spec-kit/support-desk/internal/service"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// SupportHandler exposes the customer_support operation over HTTP.
type SupportHandler struct {
	service *service.SupportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{service: supportService}
}

// Submit POST /tools/customer_support.
func (h *SupportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result := h.service.Submit(c.UserContext(), req)

	status := result.HTTPStatus
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(result)
}
