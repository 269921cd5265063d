package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Vincent-than/ai-code-fixer/internal/dto"
	"github.com/Vincent-than/ai-code-fixer/internal/service"
	"github.com/Vincent-than/ai-code-fixer/internal/utils"
	"github.com/Vincent-than/ai-code-fixer/pkg/ai"
)

// CorrectionHandler handles code correction submissions.
type CorrectionHandler struct {
	service service.CorrectionService
	logger  zerolog.Logger
}

// NewCorrectionHandler constructs a correction handler.
func NewCorrectionHandler(service service.CorrectionService, logger zerolog.Logger) *CorrectionHandler {
	return &CorrectionHandler{
		service: service,
		logger:  logger.With().Str("component", "correction_handler").Logger(),
	}
}

// Register wires correction routes.
func (h *CorrectionHandler) Register(router fiber.Router) {
	router.Post("", h.correct)
}

func (h *CorrectionHandler) correct(c *fiber.Ctx) error {
	var payload dto.CorrectionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload", "")
	}

	result, err := h.service.Correct(c.Context(), payload)
	if err != nil {
		var providerErr *service.ProviderError
		switch {
		case errors.Is(err, service.ErrProviderUnconfigured):
			h.logger.Error().Msg("correction requested but no provider credential is configured")
			return utils.SendError(c, fiber.StatusInternalServerError, "completion provider is not configured", "")
		case errors.Is(err, service.ErrEmptyCode):
			return utils.SendError(c, fiber.StatusBadRequest, "code must not be empty", "")
		case errors.Is(err, service.ErrUnsupportedLanguage):
			return utils.SendError(c, fiber.StatusBadRequest, "unsupported language", "")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid payload", "")
		case errors.As(err, &providerErr):
			return utils.SendError(c, statusForCategory(providerErr.Category), messageForCategory(providerErr.Category), providerErr.Err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to process correction request")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to correct code", "")
		}
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func statusForCategory(category ai.Category) int {
	switch category {
	case ai.CategoryAuth:
		return fiber.StatusUnauthorized
	case ai.CategoryRateLimit:
		return fiber.StatusTooManyRequests
	case ai.CategoryTimeout:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

func messageForCategory(category ai.Category) string {
	switch category {
	case ai.CategoryAuth:
		return "completion provider rejected the configured credential"
	case ai.CategoryRateLimit:
		return "completion provider rate limit exceeded"
	case ai.CategoryTimeout:
		return "completion provider timed out"
	case ai.CategoryMalformedResponse:
		return "completion provider returned a malformed response"
	default:
		return "completion provider request failed"
	}
}
