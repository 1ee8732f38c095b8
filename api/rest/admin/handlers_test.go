package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/racewiki/server/internal/auth"
	"codeberg.org/racewiki/server/racewiki/contributions"
	"codeberg.org/racewiki/server/racewiki/entries"
	"codeberg.org/racewiki/server/racewiki/users"
)

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}

	return []float32{0.5, 0.5}, nil
}

func (f *fakeEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))

	for i, text := range texts {
		v, err := f.GenerateEmbedding(ctx, text)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

type harness struct {
	router        *gin.Engine
	entries       *entries.MemoryStore
	contributions *contributions.MemoryStore
	embedder      *fakeEmbedder
	adminToken    string
	userToken     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("JWT_SECRET", "admin-handler-test-secret")
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	accounts := users.NewMemoryStore()

	admin, err := accounts.FindOrCreateByProvider(ctx, users.ProviderIdentity{Provider: "github", ProviderID: "1", Email: "admin@racewiki.org"}, true)
	require.NoError(t, err)

	reader, err := accounts.FindOrCreateByProvider(ctx, users.ProviderIdentity{Provider: "github", ProviderID: "2", Email: "reader@racewiki.org"}, false)
	require.NoError(t, err)

	h := &harness{
		entries:       entries.NewMemoryStore(),
		contributions: contributions.NewMemoryStore(),
		embedder:      &fakeEmbedder{},
	}

	h.adminToken, err = auth.GenerateJWT(admin.ID, admin.Email, true)
	require.NoError(t, err)

	// claims admin but the account is not one
	h.userToken, err = auth.GenerateJWT(reader.ID, reader.Email, true)
	require.NoError(t, err)

	h.router = gin.New()
	RegisterRoutes(h.router.Group("/api/v1"), Dependencies{
		Entries:       h.entries,
		Editor:        entries.NewEditor(h.entries, h.embedder),
		Embedder:      h.embedder,
		Contributions: h.contributions,
		Verifier:      accounts,
	})

	return h
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body) //nolint:errcheck // test fixture
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	return w
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodGet, "/api/v1/admin/entries", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, h.do(http.MethodGet, "/api/v1/admin/entries", h.userToken, nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/v1/admin/entries", h.adminToken, nil).Code)
}

func TestCreateAndUpdateEntry(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/v1/admin/entries", h.adminToken, entries.SaveEntryRequest{
		Title:    "Porsche 911 GT3 R",
		Category: "car",
		Content:  "Rear-engined GT3 car.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created AdminEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "porsche-911-gt3-r", created.Slug)
	assert.Equal(t, entries.CategoryCar, created.Category)

	stored, err := h.entries.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Embedding)

	w = h.do(http.MethodPut, "/api/v1/admin/entries/"+created.ID, h.adminToken, entries.SaveEntryRequest{
		Title:    "Porsche 911 GT3 R",
		Slug:     created.Slug,
		Category: "Car",
		Content:  "Updated.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated AdminEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated.", updated.Content)
	assert.True(t, updated.HasEmbedding)
}

func TestCreateEntry_Errors(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/v1/admin/entries", h.adminToken, entries.SaveEntryRequest{Title: "X", Category: "Planet"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPost, "/api/v1/admin/entries", h.adminToken, map[string]string{"category": "Car"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "title is required")

	h.embedder.err = errors.New("quota")
	w = h.do(http.MethodPost, "/api/v1/admin/entries", h.adminToken, entries.SaveEntryRequest{Title: "Spa", Category: "Track"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetAndDeleteEntry(t *testing.T) {
	h := newHarness(t)

	entry, err := h.entries.Create(context.Background(), entries.Draft{Title: "Monza", Slug: "monza", Category: entries.CategoryTrack})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/v1/admin/entries/"+entry.ID, h.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/api/v1/admin/entries/not-a-uuid", h.adminToken, nil).Code)

	assert.Equal(t, http.StatusOK, h.do(http.MethodDelete, "/api/v1/admin/entries/"+entry.ID, h.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodDelete, "/api/v1/admin/entries/"+entry.ID, h.adminToken, nil).Code)
}

func TestGenerateEmbedding(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/v1/admin/embeddings", h.adminToken, EmbeddingRequest{Text: "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp EmbeddingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Dimensions)
}

func TestSeedEntries_IsIdempotent(t *testing.T) {
	h := newHarness(t)

	for range 2 {
		w := h.do(http.MethodPost, "/api/v1/admin/seed", h.adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	_, total, err := h.entries.List(context.Background(), entries.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	entry, err := h.entries.GetBySlug(context.Background(), "spa-francorchamps")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Embedding)
}

func TestContributionReview(t *testing.T) {
	h := newHarness(t)

	contribution, err := h.contributions.Create(context.Background(), &contributions.CreateRequest{
		Title:    "Suzuka",
		Category: "Track",
		Content:  "Figure eight.",
	})
	require.NoError(t, err)

	w := h.do(http.MethodGet, "/api/v1/admin/contributions?status=pending", h.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list ContributionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Contributions, 1)

	w = h.do(http.MethodPut, "/api/v1/admin/contributions/"+contribution.ID+"/status", h.adminToken,
		contributions.UpdateStatusRequest{Status: contributions.StatusAccepted})
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodPut, "/api/v1/admin/contributions/"+contribution.ID+"/status", h.adminToken,
		contributions.UpdateStatusRequest{Status: "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, "/api/v1/admin/contributions?status=maybe", h.adminToken, nil).Code)
}
