package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		accept   string
		want     Locale
	}{
		{"explicit wins", "zh", "en-US,en;q=0.9", LocaleZH},
		{"explicit region", "zh-CN", "", LocaleZH},
		{"explicit case", "EN", "zh", LocaleEN},
		{"unsupported explicit falls through", "fr", "zh-CN,zh;q=0.9", LocaleZH},
		{"accept language", "", "zh-CN,zh;q=0.9,en;q=0.8", LocaleZH},
		{"accept language english", "", "en-GB", LocaleEN},
		{"nothing", "", "", LocaleEN},
		{"unsupported accept", "", "fr-FR", LocaleEN},
		{"garbage", "", ";;;", LocaleEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.explicit, tt.accept))
		})
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "搜索", T(LocaleZH, "search"))
	assert.Equal(t, "Search", T(LocaleEN, "search"))
	assert.Equal(t, "Search", T(Locale("de"), "search"))
	assert.Equal(t, "missing.key", T(LocaleZH, "missing.key"))
}

func TestMessages_TablesHaveSameKeys(t *testing.T) {
	en, ok := Messages(LocaleEN)
	require.True(t, ok)
	zh, ok := Messages(LocaleZH)
	require.True(t, ok)

	for key := range en {
		assert.Contains(t, zh, key)
	}
	assert.Len(t, zh, len(en))

	_, ok = Messages(Locale("de"))
	assert.False(t, ok)
}

func TestMessages_ReturnsCopy(t *testing.T) {
	table, _ := Messages(LocaleEN)
	table["search"] = "changed"

	assert.Equal(t, "Search", T(LocaleEN, "search"))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, string(FromGin(c))+"/"+string(FromContext(c.Request.Context())))
	})

	req := httptest.NewRequest(http.MethodGet, "/?lang=zh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "zh/zh", w.Body.String())
	assert.Equal(t, "zh", w.Header().Get("Content-Language"))
}
