package contributions

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/auth"
	"codeberg.org/racewiki/server/racewiki/contributions"
)

func RegisterRoutes(router *gin.RouterGroup, store contributions.Store, limit gin.HandlerFunc) {
	router.POST("/contributions", limit, auth.OptionalAuthMiddleware(), SubmitHandler(store))
}
