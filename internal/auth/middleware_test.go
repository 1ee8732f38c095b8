package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	admins map[string]bool
	err    error
}

func (s stubVerifier) IsAdmin(_ context.Context, userID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	return s.admins[userID], nil
}

func adminRouter(verifier AdminVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin", AdminAuthMiddleware(verifier), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.String(http.StatusOK, userID)
	})

	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	adminToken, err := GenerateJWT("admin-1", "admin@example.com", true)
	require.NoError(t, err)

	// claims say admin but the account no longer is
	demotedToken, err := GenerateJWT("user-2", "user@example.com", true)
	require.NoError(t, err)

	router := adminRouter(stubVerifier{admins: map[string]bool{"admin-1": true}})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"admin", "Bearer " + adminToken, http.StatusOK},
		{"stale admin claim", "Bearer " + demotedToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAdminAuthMiddleware_VerifierError(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateJWT("admin-1", "admin@example.com", true)
	require.NoError(t, err)

	router := adminRouter(stubVerifier{err: errors.New("db down")})

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", OptionalAuthMiddleware(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			userID = "anonymous"
		}
		c.String(http.StatusOK, userID)
	})

	token, err := GenerateJWT("user-1", "u@example.com", false)
	require.NoError(t, err)

	for header, want := range map[string]string{
		"":                "anonymous",
		"Bearer garbage":  "anonymous",
		"Bearer " + token: "user-1",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, w.Body.String())
	}
}

func TestIsAdminEmail(t *testing.T) {
	allowlist := []string{"Admin@RaceWiki.org", " ops@racewiki.org "}

	assert.True(t, IsAdminEmail("admin@racewiki.org", allowlist))
	assert.True(t, IsAdminEmail("ops@racewiki.org", allowlist))
	assert.False(t, IsAdminEmail("someone@racewiki.org", allowlist))
	assert.False(t, IsAdminEmail("", allowlist))
	assert.False(t, IsAdminEmail("admin@racewiki.org", nil))
}
