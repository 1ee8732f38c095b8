package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/swaggo/swag"

	"codeberg.org/racewiki/server/api/rest/admin"
	"codeberg.org/racewiki/server/api/rest/auth"
	"codeberg.org/racewiki/server/api/rest/contributions"
	"codeberg.org/racewiki/server/api/rest/health"
	"codeberg.org/racewiki/server/api/rest/i18n"
	"codeberg.org/racewiki/server/api/rest/search"
	"codeberg.org/racewiki/server/api/rest/wiki"
	_ "codeberg.org/racewiki/server/docs"
	"codeberg.org/racewiki/server/internal/botdefense"
	"codeberg.org/racewiki/server/internal/config"
	"codeberg.org/racewiki/server/internal/errors"
	intli18n "codeberg.org/racewiki/server/internal/i18n"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/internal/metrics"
	"codeberg.org/racewiki/server/internal/ratelimit"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())
	router.Use(metrics.Middleware())
	router.Use(CORSMiddleware(server.config))
	router.Use(intli18n.Middleware())

	var redisClient *redis.Client
	if server.cache != nil {
		redisClient = server.cache.Client()
	}

	router.Use(botDefense(server.config, redisClient).Middleware())

	limit, err := ratelimit.New(server.config.RateLimit, redisClient)
	if err != nil {
		return err
	}

	var pinger health.Pinger
	if server.db != nil {
		pinger = server.db
	}

	router.GET("/health", health.Handler(pinger))
	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/doc.json", swaggerDoc)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		search.RegisterRoutes(v1, server.services.Resolver, limit)
		wiki.RegisterRoutes(v1, server.stores.Entries, server.services.Renderer)
		contributions.RegisterRoutes(v1, server.stores.Contributions, limit)
		i18n.RegisterRoutes(v1)
		auth.RegisterRoutes(v1, server.stores.Users, server.config.AdminEmails)
		admin.RegisterRoutes(v1, admin.Dependencies{
			Entries:       server.stores.Entries,
			Editor:        server.services.Editor,
			Embedder:      server.services.Embedder,
			Contributions: server.stores.Contributions,
			Verifier:      server.stores.Users,
		})
	}

	return nil
}

// traps are shared through redis when it is configured
func botDefense(cfg *config.Config, client *redis.Client) *botdefense.Defense {
	defenseConfig := botdefense.DefaultConfig()
	defenseConfig.Enabled = cfg.BotDefenseEnabled

	var store botdefense.Store = botdefense.NewMemoryStore(defenseConfig.TrapTTL)
	if client != nil {
		store = botdefense.NewRedisStore(client, defenseConfig.TrapTTL)
	}

	return botdefense.New(defenseConfig, store)
}

func swaggerDoc(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		errors.InternalError(c, "failed to read API docs", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
