package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName            string
	AppEnv             string
	AppPort            string
	OpenAIAPIKey       string
	OpenAIModel        string
	MaxOutputTokens    int
	Temperature        float64
	ProviderTimeout    time.Duration
	CorrectionRateMax  int
	CorrectionRateSpan time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// ProviderConfigured reports whether the completion provider credential is present.
func (c Config) ProviderConfigured() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FIXER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "AI Code Fixer")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("max_output_tokens", 2048)
	v.SetDefault("temperature", 0.2)
	v.SetDefault("provider_timeout", "60s")
	v.SetDefault("correction_rate_max", 10)
	v.SetDefault("correction_rate_span", "1m")

	timeout, err := time.ParseDuration(v.GetString("provider_timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid provider timeout: %w", err)
	}

	rateSpan, err := time.ParseDuration(v.GetString("correction_rate_span"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid correction rate span: %w", err)
	}

	cfg := Config{
		AppName:            v.GetString("app.name"),
		AppEnv:             v.GetString("app.env"),
		AppPort:            v.GetString("app.port"),
		OpenAIAPIKey:       v.GetString("openai.api_key"),
		OpenAIModel:        v.GetString("openai.model"),
		MaxOutputTokens:    v.GetInt("max_output_tokens"),
		Temperature:        v.GetFloat64("temperature"),
		ProviderTimeout:    timeout,
		CorrectionRateMax:  v.GetInt("correction_rate_max"),
		CorrectionRateSpan: rateSpan,
	}

	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 2048
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		cfg.Temperature = 0.2
	}

	return cfg, nil
}
