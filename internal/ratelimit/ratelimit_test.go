package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/racewiki/server/internal/i18n"
)

func TestNew_LimitsPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limit, err := New("2-M", nil)
	require.NoError(t, err)

	router := gin.New()
	router.Use(i18n.Middleware())
	router.GET("/search", limit, func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/search?lang=zh", nil)
		req.RemoteAddr = "203.0.113.7:1234"

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests {
			assert.Contains(t, w.Body.String(), i18n.T(i18n.LocaleZH, "error.rateLimited"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNew_InvalidRate(t *testing.T) {
	_, err := New("lots", nil)
	assert.Error(t, err)
}
