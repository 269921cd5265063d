package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Vincent-than/ai-code-fixer/internal/config"
	"github.com/Vincent-than/ai-code-fixer/internal/handler"
	"github.com/Vincent-than/ai-code-fixer/internal/middleware"
	"github.com/Vincent-than/ai-code-fixer/internal/router"
	"github.com/Vincent-than/ai-code-fixer/internal/service"
	"github.com/Vincent-than/ai-code-fixer/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var completer ai.Completer
	if cfg.ProviderConfigured() {
		openaiCompleter, err := ai.NewOpenAICompleter(ai.OpenAIConfig{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.OpenAIModel,
			MaxTokens:   cfg.MaxOutputTokens,
			Temperature: float32(cfg.Temperature),
			Timeout:     cfg.ProviderTimeout,
			Logger:      logger,
		})
		if err != nil {
			log.Fatalf("failed to create completion client: %v", err)
		}
		completer = openaiCompleter
	} else {
		logger.Warn().Msg("no provider credential configured, correction requests will fail until FIXER_OPENAI_API_KEY is set")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	correctionService := service.NewCorrectionService(completer, validate, logger)
	correctionHandler := handler.NewCorrectionHandler(correctionService, logger)
	languageHandler := handler.NewLanguageHandler()

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		CorrectionHandler: correctionHandler,
		LanguageHandler:   languageHandler,
		RateLimit:         middleware.RateLimit("corrections", cfg.CorrectionRateMax, cfg.CorrectionRateSpan),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
