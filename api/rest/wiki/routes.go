package wiki

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/markdown"
)

// registers the public wiki routes
func RegisterRoutes(router *gin.RouterGroup, store EntryReader, renderer *markdown.Renderer) {
	wikiGroup := router.Group("/wiki")
	{
		wikiGroup.GET("", ListEntriesHandler(store))
		wikiGroup.GET("/:slug", GetEntryHandler(store, renderer))
	}

	router.GET("/categories", ListCategoriesHandler)
}
