package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/config"
	"codeberg.org/racewiki/server/internal/database"
	"codeberg.org/racewiki/server/internal/embedcache"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/internal/seed"
	"codeberg.org/racewiki/server/racewiki/contributions"
	"codeberg.org/racewiki/server/racewiki/entries"
	"codeberg.org/racewiki/server/racewiki/users"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	server := &Server{config: cfg}

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")

		server.stores = &Stores{
			Entries:       entries.NewMemoryStore(),
			Users:         users.NewMemoryStore(),
			Contributions: contributions.NewMemoryStore(),
		}
	default:
		db, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		server.db = db
		server.stores = &Stores{
			Entries:       entries.NewRepository(db),
			Users:         users.NewRepository(db),
			Contributions: contributions.New(db),
		}
	}

	if cfg.RedisURL != "" {
		cache, err := embedcache.NewRedisStoreFromURL(cfg.RedisURL, cfg.EmbeddingCacheTTL)
		if err != nil {
			server.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}

		server.cache = cache
	}

	services, err := InitializeServices(cfg, server.stores.Entries, server.cache)
	if err != nil {
		server.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	server.services = services

	// a fresh memory store is useless without content
	if cfg.StoreDriver == config.StoreDriverMemory {
		if err := seedMemoryStore(ctx, server); err != nil {
			logger.ErrorErr(err, "failed to seed memory store")
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server.router = gin.New()

	if err := RegisterRoutes(server.router, server); err != nil {
		server.Close()
		return nil, err
	}

	return server, nil
}

func seedMemoryStore(ctx context.Context, server *Server) error {
	seeds, err := seed.Builtin()
	if err != nil {
		return err
	}

	_, err = seed.Run(ctx, server.stores.Entries, server.services.Embedder, seeds)
	return err
}

// releases redis and database connections
func (s *Server) Close() {
	if s.cache != nil {
		s.cache.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if s.db != nil {
		s.db.Close()
	}
}
