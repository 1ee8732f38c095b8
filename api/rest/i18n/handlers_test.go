package i18n

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))

	return router
}

func TestGetTranslationsHandler(t *testing.T) {
	tests := []struct {
		path   string
		status int
		locale string
	}{
		{"/api/v1/i18n/en", http.StatusOK, "en"},
		{"/api/v1/i18n/zh-CN", http.StatusOK, "zh"},
		{"/api/v1/i18n/fr", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.status, w.Code)

			if tt.status != http.StatusOK {
				return
			}

			var resp TranslationsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.locale, resp.Locale)
			assert.NotEmpty(t, resp.Messages["error.emptyQuery"])
		})
	}
}

func TestListLocalesHandler(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/i18n", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp LocalesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"en", "zh"}, resp.Locales)
	assert.Equal(t, "en", resp.Default)
}
