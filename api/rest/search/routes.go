package search

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/auth"
)

// registers the search routes behind the given rate limiter
func RegisterRoutes(router *gin.RouterGroup, resolver Resolver, limit gin.HandlerFunc) {
	searchGroup := router.Group("/search", limit, auth.OptionalAuthMiddleware())
	{
		searchGroup.POST("", SearchHandler(resolver))
		searchGroup.GET("", QuickSearchHandler(resolver))
	}
}
