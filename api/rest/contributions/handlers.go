package contributions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/auth"
	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/i18n"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/racewiki/contributions"
)

// SubmitHandler godoc
// @Summary Contribute an entry
// @Description Queue a reader-written entry for admin review
// @Tags contributions
// @Accept json
// @Produce json
// @Param lang query string false "Response language" Enums(en, zh)
// @Param request body contributions.CreateRequest true "Contribution"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/contributions [post]
func SubmitHandler(store contributions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.FromGin(c)

		var req contributions.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, i18n.T(locale, "error.invalidContribution"), err)
			return
		}

		req.Locale = string(locale)
		if userID, ok := auth.GetUserID(c); ok {
			req.SubmittedBy = &userID
		}

		contribution, err := store.Create(c.Request.Context(), &req)
		if err != nil {
			errors.InternalError(c, "failed to save contribution", err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("contribution received",
			"contribution_id", contribution.ID,
			"title", contribution.Title,
			"category", contribution.Category,
			"locale", contribution.Locale,
		)

		c.JSON(http.StatusCreated, SubmitResponse{
			ID:      contribution.ID,
			Message: i18n.T(locale, "contributionSaved"),
		})
	}
}
