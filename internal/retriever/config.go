package retriever

import (
	"time"

	"codeberg.org/racewiki/server/internal/config"
)

const (
	DefaultTopK                = 5
	DefaultSimilarityThreshold = 0.5
	DefaultKeywordLimit        = 5
	DefaultChannelTimeout      = 8 * time.Second

	// keyword search needs strictly more runes than this
	MinKeywordQueryLength = 2
)

func DefaultConfig() Config {
	return Config{
		TopK:                DefaultTopK,
		SimilarityThreshold: DefaultSimilarityThreshold,
		KeywordLimit:        DefaultKeywordLimit,
		ChannelTimeout:      DefaultChannelTimeout,
	}
}

// builds the resolver configuration from the application config
func ConfigFromApp(cfg *config.Config) Config {
	c := DefaultConfig()

	if cfg.SearchTopK > 0 {
		c.TopK = cfg.SearchTopK
	}

	if cfg.SearchSimilarityThreshold > 0 {
		c.SimilarityThreshold = cfg.SearchSimilarityThreshold
	}

	if cfg.SearchChannelTimeout > 0 {
		c.ChannelTimeout = cfg.SearchChannelTimeout
	}

	return c
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()

	if c.TopK <= 0 {
		c.TopK = d.TopK
	}

	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = d.SimilarityThreshold
	}

	if c.KeywordLimit <= 0 {
		c.KeywordLimit = d.KeywordLimit
	}

	if c.ChannelTimeout <= 0 {
		c.ChannelTimeout = d.ChannelTimeout
	}

	return c
}
