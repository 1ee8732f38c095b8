package llm

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultDimensions       = 768
	defaultCaptionMaxTokens = 100
)

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	provider := Provider(os.Getenv("AI_PROVIDER"))
	if provider == "" {
		provider = ProviderGemini // default
	}

	var apiKey string

	switch provider {
	case ProviderGemini:
		apiKey = os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	case ProviderOpenAI:
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", provider)
	}

	dimensions := defaultDimensions
	if dimStr := os.Getenv("EMBEDDING_DIMENSIONS"); dimStr != "" {
		if val, err := strconv.Atoi(dimStr); err == nil && val > 0 {
			dimensions = val
		}
	}

	captionMaxTokens := defaultCaptionMaxTokens
	if maxTokensStr := os.Getenv("CAPTION_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil && val > 0 {
			captionMaxTokens = val
		}
	}

	return &Config{
		Provider:         provider,
		APIKey:           apiKey,
		BaseURL:          os.Getenv("AI_BASE_URL"),
		EmbedderModel:    os.Getenv("EMBEDDER_MODEL"),
		Dimensions:       dimensions,
		CaptionModel:     os.Getenv("CAPTION_MODEL"),
		CaptionMaxTokens: captionMaxTokens,
	}, nil
}
