package admin

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	admin := router.Group("/admin")
	admin.Use(auth.AdminAuthMiddleware(deps.Verifier))

	admin.GET("/entries", ListEntries(deps.Entries))
	admin.GET("/entries/:id", GetEntry(deps.Entries))
	admin.POST("/entries", CreateEntry(deps.Editor))
	admin.PUT("/entries/:id", UpdateEntry(deps.Editor))
	admin.DELETE("/entries/:id", DeleteEntry(deps.Entries))

	admin.POST("/embeddings", GenerateEmbedding(deps.Embedder))
	admin.POST("/seed", SeedEntries(deps.Entries, deps.Embedder))

	admin.GET("/contributions", ListContributions(deps.Contributions))
	admin.PUT("/contributions/:id/status", UpdateContributionStatus(deps.Contributions))
}
