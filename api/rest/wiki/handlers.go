package wiki

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/api/rest/pagination"
	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/i18n"
	"codeberg.org/racewiki/server/internal/markdown"
	"codeberg.org/racewiki/server/racewiki/entries"
)

// GetEntryHandler godoc
// @Summary Get a wiki page
// @Description Get an entry by slug with rendered HTML, display image and SEO description
// @Tags wiki
// @Produce json
// @Param slug path string true "Entry slug"
// @Param lang query string false "Response language" Enums(en, zh)
// @Success 200 {object} PageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/wiki/{slug} [get]
func GetEntryHandler(store EntryReader, renderer *markdown.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.FromGin(c)
		slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

		entry, err := store.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if stderrors.Is(err, entries.ErrEntryNotFound) {
				errors.NotFound(c, i18n.T(locale, "error.entryNotFound"))
				return
			}

			errors.InternalError(c, "failed to load entry", err)
			return
		}

		page, err := buildPage(entry, renderer, locale)
		if err != nil {
			errors.InternalError(c, "failed to render entry", err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// ListEntriesHandler godoc
// @Summary List wiki entries
// @Description Paginated entries, most recently updated first, optionally filtered by category
// @Tags wiki
// @Produce json
// @Param category query string false "Category filter" Enums(Car, Track, Series, Software, Resource, Other)
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} ListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/wiki [get]
func ListEntriesHandler(store EntryReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, defaultPageSize, maxPageSize)

		var category entries.Category
		if raw := c.Query("category"); raw != "" {
			parsed, err := entries.ParseCategory(raw)
			if err != nil {
				errors.BadRequest(c, "invalid category", err)
				return
			}

			category = parsed
		}

		list, total, err := store.List(c.Request.Context(), entries.ListParams{
			Category: category,
			Limit:    params.Limit,
			Offset:   params.Offset,
		})

		if err != nil {
			errors.InternalError(c, "failed to list entries", err)
			return
		}

		if list == nil {
			list = []entries.Entry{}
		}

		c.JSON(http.StatusOK, ListResponse{
			Entries:    list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// ListCategoriesHandler godoc
// @Summary List categories
// @Description The fixed set of entry categories with localized labels
// @Tags wiki
// @Produce json
// @Param lang query string false "Response language" Enums(en, zh)
// @Success 200 {object} CategoriesResponse
// @Router /api/v1/categories [get]
func ListCategoriesHandler(c *gin.Context) {
	locale := i18n.FromGin(c)

	out := make([]CategoryResponse, 0, len(entries.Categories))
	for _, category := range entries.Categories {
		out = append(out, CategoryResponse{
			Value: category,
			Label: categoryLabel(locale, category),
		})
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: out})
}

func buildPage(entry *entries.Entry, renderer *markdown.Renderer, locale i18n.Locale) (*PageResponse, error) {
	content := markdown.NormalizeNewlines(entry.Content)

	html, err := renderer.Render(content)
	if err != nil {
		return nil, err
	}

	return &PageResponse{
		ID:              entry.ID,
		Title:           entry.Title,
		Slug:            entry.Slug,
		Category:        entry.Category,
		CategoryLabel:   categoryLabel(locale, entry.Category),
		Content:         content,
		ContentHTML:     html,
		ImageURL:        entry.ImageURL,
		DisplayImageURL: markdown.DisplayImageURL(entry.ImageURL, content),
		Description:     markdown.Summary(content, markdown.DescriptionLength),
		UpdatedAt:       entry.UpdatedAt,
	}, nil
}

func categoryLabel(locale i18n.Locale, category entries.Category) string {
	return i18n.T(locale, "category."+string(category))
}
