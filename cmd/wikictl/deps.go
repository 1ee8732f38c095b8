package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/racewiki/server/internal/config"
	"codeberg.org/racewiki/server/internal/database"
	"codeberg.org/racewiki/server/internal/embedcache"
	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/racewiki/entries"
	"codeberg.org/racewiki/server/racewiki/users"
)

// connections a command opened and must release
type deps struct {
	db      *pgxpool.Pool
	cache   *embedcache.RedisStore
	entries entries.Store
	users   users.Store
	llm     llm.LLM
}

func openDeps(ctx context.Context, withLLM bool) (*deps, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return nil, fmt.Errorf("wikictl needs STORE_DRIVER=postgres, the memory store lives inside the server process")
	}

	db, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	d := &deps{
		db:      db,
		entries: entries.NewRepository(db),
		users:   users.NewRepository(db),
	}

	if !withLLM {
		return d, nil
	}

	client, err := llm.NewLLMWithConfig(ctx, llm.ConfigFromApp(cfg))
	if err != nil {
		d.close()
		return nil, err
	}

	d.llm = client

	if cfg.RedisURL != "" {
		cache, err := embedcache.NewRedisStoreFromURL(cfg.RedisURL, cfg.EmbeddingCacheTTL)
		if err != nil {
			d.close()
			return nil, err
		}

		d.cache = cache
	}

	return d, nil
}

// the embedder commands should use, cached when redis is configured
func (d *deps) embedder() llm.Embedder {
	if d.cache == nil {
		return d.llm
	}

	return embedcache.New(d.llm, d.cache, fmt.Sprintf("%s:%d", cfg.AIProvider, cfg.EmbeddingDimensions))
}

func (d *deps) close() {
	if d.cache != nil {
		d.cache.Close() //nolint:errcheck,gosec // best-effort cleanup
	}

	d.db.Close()
}
