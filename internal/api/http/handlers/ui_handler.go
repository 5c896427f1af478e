package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// UIHandler serves the support form document.
type UIHandler struct {
	assetPath string
}

// NewUIHandler returns a new handler instance.
func NewUIHandler(assetPath string) *UIHandler {
	return &UIHandler{assetPath: assetPath}
}

// SupportForm GET /ui/support-form. The build artifact is read fresh on
// every fetch; there is no caching.
func (h *UIHandler) SupportForm(c *fiber.Ctx) error {
	data, err := os.ReadFile(h.assetPath)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Type("html")
	return c.Send(data)
}
