package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Vincent-than/ai-code-fixer/internal/config"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status             string    `json:"status"`
	Timestamp          time.Time `json:"timestamp"`
	Service            string    `json:"service"`
	Environment        string    `json:"environment"`
	ProviderConfigured bool      `json:"providerConfigured"`
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Status:             "ok",
			Timestamp:          time.Now().UTC(),
			Service:            cfg.AppName,
			Environment:        cfg.AppEnv,
			ProviderConfigured: cfg.ProviderConfigured(),
		})
	}
}
