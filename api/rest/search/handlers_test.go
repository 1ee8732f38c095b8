package search

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/i18n"
	"codeberg.org/racewiki/server/internal/retriever"
	"codeberg.org/racewiki/server/racewiki/entries"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakeResolver struct {
	got    retriever.Request
	calls  int
	result *retriever.Result
	err    error
}

func (f *fakeResolver) Resolve(_ context.Context, req retriever.Request) (*retriever.Result, error) {
	f.calls++
	f.got = req

	if f.err != nil {
		return nil, f.err
	}

	return f.result, nil
}

func newRouter(resolver Resolver) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(i18n.Middleware())
	RegisterRoutes(router.Group("/api/v1"), resolver, func(c *gin.Context) { c.Next() })

	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body) //nolint:errcheck // test fixture

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestSearchHandler_Text(t *testing.T) {
	resolver := &fakeResolver{result: &retriever.Result{
		Entries:       []entries.Entry{{ID: "1", Title: "Spa", Slug: "spa", Category: entries.CategoryTrack}},
		ResolvedQuery: "spa",
	}}

	w := postJSON(newRouter(resolver), "/api/v1/search", SearchRequest{Query: "spa"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "spa", resp.InferredQuery)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "spa", resp.Results[0].Slug)

	assert.Equal(t, "spa", resolver.got.Text)
	assert.Nil(t, resolver.got.Image)
	assert.Equal(t, "en", resolver.got.Locale)
}

func TestSearchHandler_EmptyResultsEncodeAsArray(t *testing.T) {
	resolver := &fakeResolver{result: &retriever.Result{ResolvedQuery: "nothing"}}

	w := postJSON(newRouter(resolver), "/api/v1/search", SearchRequest{Query: "nothing"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":[]`)
}

func TestSearchHandler_ImageDataURL(t *testing.T) {
	resolver := &fakeResolver{result: &retriever.Result{ResolvedQuery: "a red race car", ImageDerived: true}}
	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)

	w := postJSON(newRouter(resolver), "/api/v1/search", SearchRequest{Image: image})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngHeader, resolver.got.Image)
	assert.Equal(t, "image/png", resolver.got.ImageMIME)
	assert.Contains(t, w.Body.String(), `"imageDerived":true`)
}

func TestSearchHandler_InvalidImage(t *testing.T) {
	resolver := &fakeResolver{}

	w := postJSON(newRouter(resolver), "/api/v1/search?lang=zh", SearchRequest{Image: "not base64!!"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), i18n.T(i18n.LocaleZH, "error.invalidImage"))
	assert.Zero(t, resolver.calls)
}

func TestSearchHandler_ImageTooLarge(t *testing.T) {
	big := make([]byte, MaxImageBytes+1)
	copy(big, pngHeader)

	resolver := &fakeResolver{}
	w := postJSON(newRouter(resolver), "/api/v1/search", SearchRequest{Image: base64.StdEncoding.EncodeToString(big)})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), i18n.T(i18n.LocaleEN, "error.imageTooLarge"))
	assert.Zero(t, resolver.calls)
}

func TestSearchHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid request", retriever.ErrInvalidRequest, http.StatusBadRequest, apierrors.CodeBadRequest},
		{"empty query", retriever.ErrEmptyQuery, http.StatusBadRequest, apierrors.CodeBadRequest},
		{"captioning", fmt.Errorf("%w: quota", retriever.ErrCaptioningFailure), http.StatusBadGateway, apierrors.CodeCaptioningFailed},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, apierrors.CodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(newRouter(&fakeResolver{err: tt.err}), "/api/v1/search", SearchRequest{Query: "x"})

			require.Equal(t, tt.status, w.Code)

			var resp apierrors.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error)
		})
	}
}

func TestSearchHandler_LocalizedEmptyQuery(t *testing.T) {
	router := newRouter(&fakeResolver{err: retriever.ErrEmptyQuery})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(`{"query":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), i18n.T(i18n.LocaleZH, "error.emptyQuery"))
}

func TestQuickSearchHandler(t *testing.T) {
	resolver := &fakeResolver{result: &retriever.Result{ResolvedQuery: "gt3"}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=gt3", nil)
	w := httptest.NewRecorder()
	newRouter(resolver).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gt3", resolver.got.Text)
}

func TestDecodeImage(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	data, mime, err := decodeImage(encoded)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "image/png", mime)

	_, _, err = decodeImage(strings.TrimRight(encoded, "="))
	assert.NoError(t, err, "unpadded base64 is accepted")

	_, _, err = decodeImage(base64.StdEncoding.EncodeToString([]byte("plain text, not an image")))
	assert.ErrorIs(t, err, errInvalidImage)

	_, _, err = decodeImage("data:image/png,rawdata")
	assert.ErrorIs(t, err, errInvalidImage)
}
