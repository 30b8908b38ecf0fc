package llm

import "fmt"

type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGroq      Provider = "groq"
	ProviderAnthropic Provider = "anthropic"
)

type ClientConfig struct {
	Provider Provider
	Model    string
	APIKey   string
	// BaseURL overrides the provider endpoint; empty keeps the SDK default.
	BaseURL string
}

// NewFromConfig builds the ChatClient for the configured provider, falling
// back to the provider's default model when none is set.
func NewFromConfig(cfg ClientConfig) (ChatClient, error) {
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}

	switch cfg.Provider {
	case ProviderOpenAI, ProviderGroq, ProviderAnthropic:
	default:
		return nil, fmt.Errorf("unsupported llm provider %q, must be one of: openai, groq, anthropic", cfg.Provider)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModelFor(cfg.Provider)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing API key for llm provider %q", cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderGroq:
		return NewGroqClient(cfg.APIKey, model, cfg.BaseURL), nil
	case ProviderAnthropic:
		return NewAnthropicClient(cfg.APIKey, model, cfg.BaseURL), nil
	default:
		return NewOpenAIClient(cfg.APIKey, model, cfg.BaseURL), nil
	}
}

func DefaultModelFor(provider Provider) string {
	switch provider {
	case ProviderGroq:
		return "llama-3.1-8b-instant"
	case ProviderAnthropic:
		return "claude-haiku-4-5"
	default:
		return "gpt-3.5-turbo"
	}
}
