package ai

import (
	"context"
	"fmt"
)

// FactoryConfig selects and configures the model backend.
type FactoryConfig struct {
	// Provider is "openai" (any OpenAI-compatible endpoint) or "gemini".
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// New builds the configured ChatModel. Returns (nil, nil) when no API key is
// present: the product runs in deterministic fallback mode without a model
// backend, so an absent credential is not an error here. Callers that
// require a model (the conversational reply path) surface their own
// configuration error.
func New(ctx context.Context, cfg FactoryConfig) (ChatModel, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIModel(OpenAIConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		}), nil
	case "gemini":
		return NewGeminiModel(ctx, GeminiConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
	default:
		return nil, fmt.Errorf("unsupported AI provider: %q", cfg.Provider)
	}
}
