package auth

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/auth"
	"codeberg.org/racewiki/server/racewiki/users"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, store users.Store, adminEmails []string) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(store, adminEmails))
		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(store))
	}
}
