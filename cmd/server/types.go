package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/racewiki/server/internal/config"
	"codeberg.org/racewiki/server/internal/embedcache"
	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/internal/markdown"
	"codeberg.org/racewiki/server/internal/retriever"
	"codeberg.org/racewiki/server/racewiki/contributions"
	"codeberg.org/racewiki/server/racewiki/entries"
	"codeberg.org/racewiki/server/racewiki/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool // nil with the memory store
	cache    *embedcache.RedisStore
	config   *config.Config
	stores   *Stores
	services *Services
	router   *gin.Engine
}

// persistence, backed by postgres or by memory in development
type Stores struct {
	Entries       entries.Store
	Users         users.Store
	Contributions contributions.Store
}

// holds all external service clients (LLM, resolver, editor, renderer)
type Services struct {
	LLM      llm.LLM
	Embedder llm.Embedder // LLM embedder, behind the redis cache when configured
	Resolver *retriever.Resolver
	Editor   *entries.Editor
	Renderer *markdown.Renderer
}
