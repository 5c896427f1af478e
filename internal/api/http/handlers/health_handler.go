package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName  string
	version      string
	deliveryMode string
	uiAssetPath  string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, deliveryConfigured bool, uiAssetPath string) *HealthHandler {
	mode := "local-record"
	if deliveryConfigured {
		mode = "smtp"
	}
	return &HealthHandler{
		serviceName:  serviceName,
		version:      version,
		deliveryMode: mode,
		uiAssetPath:  uiAssetPath,
	}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking the UI artifact.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	depStatus := fiber.Map{"delivery_mode": h.deliveryMode}

	if _, err := os.Stat(h.uiAssetPath); err != nil {
		depStatus["ui_asset"] = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "ui asset unavailable",
				"details": depStatus,
			},
		})
	}
	depStatus["ui_asset"] = "ok"

	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": depStatus,
	})
}
