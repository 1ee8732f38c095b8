package llm

import (
	"context"
	"fmt"
)

// combines an Embedder and a Captioner into a single LLM
type CompositeLLM struct {
	Embedder
	Captioner
}

// creates a new LLM with auto-configuration from environment variables
func NewLLM(ctx context.Context) (LLM, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewLLMWithConfig(ctx, config)
}

// creates a new LLM with explicit configuration
func NewLLMWithConfig(_ context.Context, config *Config) (LLM, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required for provider %q", config.Provider)
	}

	switch config.Provider {
	case ProviderGemini, "":
		client := NewGeminiClient(GeminiConfig{
			APIKey:           config.APIKey,
			BaseURL:          config.BaseURL,
			EmbedderModel:    config.EmbedderModel,
			CaptionModel:     config.CaptionModel,
			Dimensions:       config.Dimensions,
			CaptionMaxTokens: config.CaptionMaxTokens,
		})

		return &CompositeLLM{Embedder: client, Captioner: client}, nil
	case ProviderOpenAI:
		client := NewOpenAIClient(OpenAIConfig{
			APIKey:           config.APIKey,
			BaseURL:          config.BaseURL,
			EmbedderModel:    config.EmbedderModel,
			CaptionModel:     config.CaptionModel,
			Dimensions:       config.Dimensions,
			CaptionMaxTokens: config.CaptionMaxTokens,
		})

		return &CompositeLLM{Embedder: client, Captioner: client}, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", config.Provider)
	}
}
