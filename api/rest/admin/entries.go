package admin

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/api/rest/pagination"
	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/racewiki/entries"
)

// ListEntries godoc
// @Summary List entries (admin)
// @Description All entries, most recently updated first, with embedding status
// @Tags admin
// @Produce json
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} EntryListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/entries [get]
// @Security BearerAuth
func ListEntries(store entries.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, defaultPageSize, maxPageSize)

		list, total, err := store.List(c.Request.Context(), entries.ListParams{
			Limit:  params.Limit,
			Offset: params.Offset,
		})

		if err != nil {
			errors.InternalError(c, "failed to list entries", err)
			return
		}

		out := make([]AdminEntry, 0, len(list))
		for _, e := range list {
			out = append(out, toAdminEntry(e))
		}

		c.JSON(http.StatusOK, EntryListResponse{
			Entries:    out,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetEntry godoc
// @Summary Get an entry (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} AdminEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/entries/{id} [get]
// @Security BearerAuth
func GetEntry(store entries.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		entry, err := store.Get(c.Request.Context(), id)
		if err != nil {
			respondEntryError(c, "failed to load entry", err)
			return
		}

		c.JSON(http.StatusOK, toAdminEntry(*entry))
	}
}

// CreateEntry godoc
// @Summary Create an entry
// @Description Slug defaults to the slugified title and is suffixed when taken. The entry is embedded before it is stored.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body entries.SaveEntryRequest true "Entry"
// @Success 201 {object} AdminEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/admin/entries [post]
// @Security BearerAuth
func CreateEntry(editor *entries.Editor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entries.SaveEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		entry, err := editor.Save(c.Request.Context(), "", req)
		if err != nil {
			respondEntryError(c, "failed to create entry", err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("entry created",
			"entry_id", entry.ID,
			"slug", entry.Slug,
			"user_id", c.GetString("user_id"),
		)

		c.JSON(http.StatusCreated, toAdminEntry(*entry))
	}
}

// UpdateEntry godoc
// @Summary Update an entry
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body entries.SaveEntryRequest true "Entry"
// @Success 200 {object} AdminEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/admin/entries/{id} [put]
// @Security BearerAuth
func UpdateEntry(editor *entries.Editor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req entries.SaveEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		entry, err := editor.Save(c.Request.Context(), id, req)
		if err != nil {
			respondEntryError(c, "failed to update entry", err)
			return
		}

		c.JSON(http.StatusOK, toAdminEntry(*entry))
	}
}

// DeleteEntry godoc
// @Summary Delete an entry
// @Tags admin
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/entries/{id} [delete]
// @Security BearerAuth
func DeleteEntry(store entries.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			respondEntryError(c, "failed to delete entry", err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("entry deleted",
			"entry_id", id,
			"user_id", c.GetString("user_id"),
		)

		c.JSON(http.StatusOK, MessageResponse{Message: "entry deleted"})
	}
}

func respondEntryError(c *gin.Context, message string, err error) {
	switch {
	case stderrors.Is(err, entries.ErrEntryNotFound):
		errors.NotFound(c, "entry not found")
	case stderrors.Is(err, entries.ErrInvalidCategory), stderrors.Is(err, entries.ErrInvalidSlug):
		errors.BadRequest(c, err.Error(), nil)
	case stderrors.Is(err, entries.ErrSlugTaken), stderrors.Is(err, entries.ErrTooManyConflicts):
		errors.Conflict(c, err.Error())
	case stderrors.Is(err, entries.ErrEmbeddingFailed):
		errors.UpstreamError(c, errors.CodeUpstreamError, "failed to generate embedding", err)
	default:
		errors.InternalError(c, message, err)
	}
}

func toAdminEntry(e entries.Entry) AdminEntry {
	return AdminEntry{Entry: e, HasEmbedding: e.HasEmbedding}
}
