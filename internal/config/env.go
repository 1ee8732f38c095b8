package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort                = "8080"
	defaultBaseURL             = "http://localhost:8080"
	defaultEmbeddingDimensions = 768
	defaultSearchTopK          = 5
	defaultSimilarityThreshold = 0.5
	defaultChannelTimeout      = 8 * time.Second
	defaultRateLimit           = "60-M"
	defaultEmbeddingCacheTTL   = 24 * time.Hour
	defaultReembedWorkers      = 4
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	cfg := &Config{
		Environment:               getEnv("ENVIRONMENT", "development"),
		Port:                      getEnv("PORT", defaultPort),
		StoreDriver:               strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		RedisURL:                  os.Getenv("REDIS_URL"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		SessionSecret:             os.Getenv("SESSION_SECRET"),
		BaseURL:                   getEnv("BASE_URL", defaultBaseURL),
		AdminEmails:               splitList(os.Getenv("ADMIN_EMAILS")),
		AllowedOrigins:            splitList(os.Getenv("ALLOWED_ORIGINS")),
		AIProvider:                strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini)),
		GeminiKey:                 os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:                 os.Getenv("OPENAI_API_KEY"),
		EmbeddingDimensions:       getEnvInt("EMBEDDING_DIMENSIONS", defaultEmbeddingDimensions),
		SearchTopK:                getEnvInt("SEARCH_TOP_K", defaultSearchTopK),
		SearchSimilarityThreshold: getEnvFloat32("SEARCH_SIMILARITY_THRESHOLD", defaultSimilarityThreshold),
		SearchChannelTimeout:      getEnvDuration("SEARCH_CHANNEL_TIMEOUT", defaultChannelTimeout),
		RateLimit:                 getEnv("RATE_LIMIT", defaultRateLimit),
		EmbeddingCacheTTL:         getEnvDuration("EMBEDDING_CACHE_TTL", defaultEmbeddingCacheTTL),
		ReembedWorkers:            getEnvInt("REEMBED_WORKERS", defaultReembedWorkers),
		BotDefenseEnabled:         getEnvBool("BOT_DEFENSE_ENABLED", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	switch c.AIProvider {
	case ProviderGemini:
		if c.GeminiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER: %s", c.AIProvider)
	}

	if c.EmbeddingDimensions <= 0 {
		return fmt.Errorf("EMBEDDING_DIMENSIONS must be positive")
	}

	if c.SessionSecret == "" {
		c.SessionSecret = c.JWTSecret
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val, err := strconv.Atoi(os.Getenv(key)); err == nil && val > 0 {
		return val
	}

	return fallback
}

func getEnvFloat32(key string, fallback float32) float32 {
	if val, err := strconv.ParseFloat(os.Getenv(key), 32); err == nil {
		return float32(val)
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return val
	}

	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val, err := time.ParseDuration(os.Getenv(key)); err == nil && val > 0 {
		return val
	}

	return fallback
}

// splits a comma separated list, dropping blanks
func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
