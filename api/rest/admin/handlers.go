package admin

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/api/rest/pagination"
	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/internal/seed"
	"codeberg.org/racewiki/server/racewiki/contributions"
	"codeberg.org/racewiki/server/racewiki/entries"
)

// GenerateEmbedding godoc
// @Summary Embed arbitrary text
// @Description Returns the embedding vector the search index would use for the given text
// @Tags admin
// @Accept json
// @Produce json
// @Param request body EmbeddingRequest true "Text to embed"
// @Success 200 {object} EmbeddingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/admin/embeddings [post]
// @Security BearerAuth
func GenerateEmbedding(embedder llm.Embedder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EmbeddingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		embedding, err := embedder.GenerateEmbedding(c.Request.Context(), req.Text)
		if err != nil {
			errors.UpstreamError(c, errors.CodeUpstreamError, "failed to generate embedding", err)
			return
		}

		c.JSON(http.StatusOK, EmbeddingResponse{
			Embedding:  embedding,
			Dimensions: len(embedding),
		})
	}
}

// SeedEntries godoc
// @Summary Seed sample entries
// @Description Upserts the built-in sample entries by slug, embedding them when the provider is reachable
// @Tags admin
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/seed [post]
// @Security BearerAuth
func SeedEntries(store entries.Store, embedder llm.Embedder) gin.HandlerFunc {
	return func(c *gin.Context) {
		seeds, err := seed.Builtin()
		if err != nil {
			errors.InternalError(c, "failed to load seed data", err)
			return
		}

		seeded, err := seed.Run(c.Request.Context(), store, embedder, seeds)
		if err != nil {
			errors.InternalError(c, "failed to seed entries", err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("entries seeded",
			"count", len(seeded),
			"user_id", c.GetString("user_id"),
		)

		c.JSON(http.StatusOK, SeedResponse{
			Message: "seeded successfully",
			Entries: seeded,
		})
	}
}

// ListContributions godoc
// @Summary List contributions
// @Description Reader submissions, newest first, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "Status filter" Enums(pending, accepted, rejected)
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} ContributionListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/contributions [get]
// @Security BearerAuth
func ListContributions(store contributions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := contributions.Status(c.Query("status"))
		if status != "" && !status.Valid() {
			errors.BadRequest(c, "invalid status", nil)
			return
		}

		params := pagination.FromQuery(c, defaultPageSize, maxPageSize)

		list, total, err := store.List(c.Request.Context(), status, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list contributions", err)
			return
		}

		if list == nil {
			list = []contributions.Contribution{}
		}

		c.JSON(http.StatusOK, ContributionListResponse{
			Contributions: list,
			Pagination:    pagination.NewMeta(params, total),
		})
	}
}

// UpdateContributionStatus godoc
// @Summary Review a contribution
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Contribution ID"
// @Param request body contributions.UpdateStatusRequest true "New status"
// @Success 200 {object} contributions.Contribution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/contributions/{id}/status [put]
// @Security BearerAuth
func UpdateContributionStatus(store contributions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req contributions.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		contribution, err := store.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			switch {
			case stderrors.Is(err, contributions.ErrInvalidStatus):
				errors.BadRequest(c, "invalid status", nil)
			case stderrors.Is(err, contributions.ErrContributionNotFound):
				errors.NotFound(c, "contribution not found")
			default:
				errors.InternalError(c, "failed to update contribution", err)
			}

			return
		}

		c.JSON(http.StatusOK, contribution)
	}
}
