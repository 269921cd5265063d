package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Vincent-than/ai-code-fixer/internal/config"
	"github.com/Vincent-than/ai-code-fixer/internal/handler"
)

func TestHealthCheck(t *testing.T) {
	cfg := config.Config{AppName: "AI Code Fixer", AppEnv: "test"}

	app := fiber.New()
	app.Get("/api/v1/health", handler.HealthCheck(cfg))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload handler.HealthResponse
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	require.Equal(t, "ok", payload.Status)
	require.Equal(t, "AI Code Fixer", payload.Service)
	require.Equal(t, "test", payload.Environment)
	require.False(t, payload.ProviderConfigured)
}
