package llm

import "codeberg.org/racewiki/server/internal/config"

// builds the LLM configuration from the application config
func ConfigFromApp(baseConfig *config.Config) *Config {
	provider := Provider(baseConfig.AIProvider)

	return &Config{
		Provider:         provider,
		APIKey:           getAPIKeyForProvider(provider, baseConfig),
		Dimensions:       baseConfig.EmbeddingDimensions,
		CaptionMaxTokens: defaultCaptionMaxTokens,
	}
}

// returns the appropriate API key for the given provider
func getAPIKeyForProvider(provider Provider, baseConfig *config.Config) string {
	switch provider {
	case ProviderOpenAI:
		return baseConfig.OpenAIKey
	default:
		return baseConfig.GeminiKey
	}
}
