package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category string
	}{
		{"pg error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), CategoryDatabase},
		{"deadline", fmt.Errorf("embed: %w", context.DeadlineExceeded), CategoryTimeout},
		{"not found", fmt.Errorf("entry not found"), CategoryNotFound},
		{"dial", fmt.Errorf("dial tcp: connection refused"), CategoryNetwork},
		{"other", fmt.Errorf("boom"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, classifyError(tt.err).category)
		})
	}
}

func TestSanitizeError_Production(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	assert.Equal(t, "database operation failed", sanitizeError(&pgconn.PgError{Message: "relation wiki_entries"}))

	t.Setenv("ENVIRONMENT", "development")

	assert.Equal(t, "boom", sanitizeError(fmt.Errorf("boom")))
}

func TestUpstreamError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/search", nil)

	UpstreamError(c, CodeCaptioningFailed, "could not read image", fmt.Errorf("503"))

	require.Equal(t, http.StatusBadGateway, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeCaptioningFailed, body.Error)
	assert.Equal(t, "could not read image", body.Message)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("3f2504e0-4f89-11d3-9a0c-0305e82c3301"))
	assert.False(t, IsValidUUID("{3f2504e0-4f89-11d3-9a0c-0305e82c3301}"))
	assert.False(t, IsValidUUID("spa-francorchamps"))
	assert.False(t, IsValidUUID(""))
}
