package config

import (
	"fmt"
	"log/slog"
	"moodmate/pkg/llm"
	"strings"

	"github.com/codingconcepts/env"
	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
)

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

type Config struct {
	Port            string `env:"PORT" default:"8080"`
	LLMProvider     string `env:"LLM_PROVIDER" default:"openai"`
	LLMModel        string `env:"LLM_MODEL"`
	LLMBaseURL      string `env:"LLM_BASE_URL"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GroqAPIKey      string `env:"GROQ_API_KEY"`
	FrontendURL     string `env:"FRONTEND_URL"`
	CORSAllowAll    bool   `env:"CORS_ALLOW_ALL" default:"false"`
	LogLevel        string `env:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Set(&cfg); err != nil {
		return nil, fmt.Errorf("setting variables from environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Provider() llm.Provider {
	return llm.Provider(strings.ToLower(strings.TrimSpace(c.LLMProvider)))
}

func (c *Config) APIKey() string {
	switch c.Provider() {
	case llm.ProviderAnthropic:
		return c.AnthropicAPIKey
	case llm.ProviderGroq:
		return c.GroqAPIKey
	default:
		return c.OpenAIAPIKey
	}
}

func (c *Config) ClientConfig() llm.ClientConfig {
	return llm.ClientConfig{
		Provider: c.Provider(),
		Model:    c.LLMModel,
		APIKey:   c.APIKey(),
		BaseURL:  c.LLMBaseURL,
	}
}

func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		slog.Warn("invalid log level, using info", "value", c.LogLevel, "error", err)
		return slog.LevelInfo
	}
	return level
}

func (c *Config) AllowedOrigins() []string {
	origins := append([]string{}, defaultOrigins...)
	if c.FrontendURL != "" {
		origins = append(origins, strings.TrimRight(c.FrontendURL, "/"))
	}
	return origins
}

func (c *Config) CORS() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	if c.CORSAllowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.AllowedOrigins()
	}
	return cfg
}
