package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vincent-than/ai-code-fixer/internal/config"
	"github.com/Vincent-than/ai-code-fixer/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	CorrectionHandler *handler.CorrectionHandler
	LanguageHandler   *handler.LanguageHandler
	RateLimit         fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	api.Get("/health", handler.HealthCheck(cfg))

	if deps.LanguageHandler != nil {
		deps.LanguageHandler.Register(api.Group("/languages"))
	}

	if deps.CorrectionHandler != nil {
		corrections := api.Group("/corrections")
		if deps.RateLimit != nil {
			corrections.Use(deps.RateLimit)
		}
		deps.CorrectionHandler.Register(corrections)
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
