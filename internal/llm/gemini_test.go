package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiTestServer(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGeminiClient(GeminiConfig{APIKey: "test-key", BaseURL: server.URL, Dimensions: 3})
}

func TestGeminiClient_GenerateEmbeddings(t *testing.T) {
	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/text-embedding-004:batchEmbedContents", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req batchEmbedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Requests, 2)
		assert.Equal(t, "models/text-embedding-004", req.Requests[0].Model)
		assert.Equal(t, 3, req.Requests[0].OutputDimensionality)
		assert.Equal(t, "spa", req.Requests[0].Content.Parts[0].Text)

		_ = json.NewEncoder(w).Encode(batchEmbedResponse{Embeddings: []geminiEmbedding{
			{Values: []float32{1, 0, 0}},
			{Values: []float32{0, 1, 0}},
		}})
	})

	embeddings, err := client.GenerateEmbeddings(context.Background(), []string{"spa", "monza"})

	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0, 0}, {0, 1, 0}}, embeddings)
}

func TestGeminiClient_EmbeddingCountMismatch(t *testing.T) {
	client := newGeminiTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(batchEmbedResponse{})
	})

	_, err := client.GenerateEmbedding(context.Background(), "spa")

	assert.Error(t, err)
}

func TestGeminiClient_ErrorStatus(t *testing.T) {
	client := newGeminiTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.GenerateEmbedding(context.Background(), "spa")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiClient_CaptionImage(t *testing.T) {
	image := []byte{0xff, 0xd8, 0xff}

	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents[0].Parts, 2)
		assert.Equal(t, "describe", req.Contents[0].Parts[0].Text)
		assert.Equal(t, "image/jpeg", req.Contents[0].Parts[1].InlineData.MimeType)
		assert.Equal(t, base64.StdEncoding.EncodeToString(image), req.Contents[0].Parts[1].InlineData.Data)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Ferrari 488 GT3 Monza\n"}]}}]}`))
	})

	caption, err := client.CaptionImage(context.Background(), image, "", "describe")

	require.NoError(t, err)
	assert.Equal(t, "Ferrari 488 GT3 Monza", caption)
}

func TestGeminiClient_CaptionRequiresImage(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{APIKey: "k"})

	_, err := client.CaptionImage(context.Background(), nil, "", "describe")

	assert.Error(t, err)
}
