package main

import (
	"context"
	"fmt"

	"codeberg.org/racewiki/server/internal/config"
	"codeberg.org/racewiki/server/internal/embedcache"
	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/internal/markdown"
	"codeberg.org/racewiki/server/internal/retriever"
	"codeberg.org/racewiki/server/racewiki/entries"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, store entries.Store, cache *embedcache.RedisStore) (*Services, error) {
	llmConfig := llm.ConfigFromApp(cfg)

	llmClient, err := llm.NewLLMWithConfig(context.Background(), llmConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	var embedder llm.Embedder = llmClient
	if cache != nil {
		// the namespace keeps vectors from different providers and sizes apart
		namespace := fmt.Sprintf("%s:%d", cfg.AIProvider, cfg.EmbeddingDimensions)
		embedder = embedcache.New(llmClient, cache, namespace)
	}

	resolver := retriever.New(store, embedder, llmClient, retriever.ConfigFromApp(cfg))

	logger.Info("services initialized",
		"provider", cfg.AIProvider,
		"dimensions", cfg.EmbeddingDimensions,
		"embedding_cache", cache != nil,
	)

	return &Services{
		LLM:      llmClient,
		Embedder: embedder,
		Resolver: resolver,
		Editor:   entries.NewEditor(store, embedder),
		Renderer: markdown.NewRenderer(),
	}, nil
}
