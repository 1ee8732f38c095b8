package i18n

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/i18n", ListLocalesHandler)
	router.GET("/i18n/:locale", GetTranslationsHandler)
}
