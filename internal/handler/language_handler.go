package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vincent-than/ai-code-fixer/internal/language"
)

// LanguageHandler serves the supported-language registry.
type LanguageHandler struct{}

// NewLanguageHandler constructs a language handler.
func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

// Register wires language routes.
func (h *LanguageHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *LanguageHandler) list(c *fiber.Ctx) error {
	return c.JSON(language.Supported())
}
