package i18n

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/i18n"
)

// GetTranslationsHandler godoc
// @Summary Get UI translations
// @Tags i18n
// @Produce json
// @Param locale path string true "Locale" Enums(en, zh)
// @Success 200 {object} TranslationsResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/i18n/{locale} [get]
func GetTranslationsHandler(c *gin.Context) {
	locale, ok := i18n.ParseLocale(c.Param("locale"))
	if !ok {
		errors.NotFound(c, "unsupported locale")
		return
	}

	messages, _ := i18n.Messages(locale)

	c.JSON(http.StatusOK, TranslationsResponse{
		Locale:   string(locale),
		Messages: messages,
	})
}

// ListLocalesHandler godoc
// @Summary List supported locales
// @Tags i18n
// @Produce json
// @Success 200 {object} LocalesResponse
// @Router /api/v1/i18n [get]
func ListLocalesHandler(c *gin.Context) {
	supported := i18n.Supported()

	locales := make([]string, len(supported))
	for i, l := range supported {
		locales[i] = string(l)
	}

	c.JSON(http.StatusOK, LocalesResponse{
		Locales: locales,
		Default: string(i18n.DefaultLocale),
	})
}
