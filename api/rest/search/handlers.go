package search

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/auth"
	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/i18n"
	"codeberg.org/racewiki/server/internal/retriever"
	"codeberg.org/racewiki/server/racewiki/entries"
)

// SearchHandler godoc
// @Summary Search the wiki
// @Description Resolve a text query or an uploaded image into matching entries. Images are captioned first and the caption is searched semantically.
// @Tags search
// @Accept json
// @Produce json
// @Param lang query string false "Response language" Enums(en, zh)
// @Param request body SearchRequest true "Text query and/or base64 image"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/search [post]
func SearchHandler(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.FromGin(c)
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if stderrors.As(err, &tooLarge) {
				errors.BadRequest(c, i18n.T(locale, "error.imageTooLarge"), nil)
				return
			}

			errors.ValidationError(c, err)
			return
		}

		searchReq := retriever.Request{Text: req.Query}

		if strings.TrimSpace(req.Image) != "" {
			image, mime, err := decodeImage(req.Image)
			if err != nil {
				key := "error.invalidImage"
				if stderrors.Is(err, errImageTooLarge) {
					key = "error.imageTooLarge"
				}

				errors.BadRequest(c, i18n.T(locale, key), nil)
				return
			}

			searchReq.Image = image
			searchReq.ImageMIME = mime
		}

		resolve(c, resolver, searchReq)
	}
}

// QuickSearchHandler godoc
// @Summary Search the wiki by text
// @Description Text-only search for links and the terminal browser
// @Tags search
// @Produce json
// @Param q query string true "Search text"
// @Param lang query string false "Response language" Enums(en, zh)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/v1/search [get]
func QuickSearchHandler(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if len(q) > maxQueryLength {
			errors.BadRequest(c, "query too long", nil)
			return
		}

		resolve(c, resolver, retriever.Request{Text: q})
	}
}

func resolve(c *gin.Context, resolver Resolver, req retriever.Request) {
	locale := i18n.FromGin(c)

	req.Locale = string(locale)
	req.UserID, _ = auth.GetUserID(c)

	result, err := resolver.Resolve(c.Request.Context(), req)
	if err != nil {
		switch {
		case stderrors.Is(err, retriever.ErrInvalidRequest):
			errors.BadRequest(c, i18n.T(locale, "error.invalidRequest"), nil)
		case stderrors.Is(err, retriever.ErrEmptyQuery):
			errors.BadRequest(c, i18n.T(locale, "error.emptyQuery"), nil)
		case stderrors.Is(err, retriever.ErrCaptioningFailure):
			errors.UpstreamError(c, errors.CodeCaptioningFailed, i18n.T(locale, "error.captioningFailed"), err)
		default:
			errors.InternalError(c, "search failed", err)
		}

		return
	}

	results := result.Entries
	if results == nil {
		results = []entries.Entry{}
	}

	c.JSON(http.StatusOK, SearchResponse{
		Results:       results,
		InferredQuery: result.ResolvedQuery,
		ImageDerived:  result.ImageDerived,
	})
}
