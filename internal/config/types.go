package config

import "time"

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Environment string
	Port        string

	// storage
	StoreDriver string
	DatabaseURL string
	RedisURL    string // optional, enables the embedding cache

	// auth
	JWTSecret     string
	SessionSecret string
	BaseURL       string
	AdminEmails   []string

	AllowedOrigins []string

	// generative AI
	AIProvider          string
	GeminiKey           string
	OpenAIKey           string
	EmbeddingDimensions int

	// search tuning
	SearchTopK                int
	SearchSimilarityThreshold float32
	SearchChannelTimeout      time.Duration

	RateLimit         string // ulule formatted rate, e.g. "60-M"
	EmbeddingCacheTTL time.Duration
	ReembedWorkers    int

	BotDefenseEnabled bool
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
