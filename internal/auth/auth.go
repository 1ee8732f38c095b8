package auth

import (
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/apple"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"

	"codeberg.org/racewiki/server/internal/config"
	"codeberg.org/racewiki/server/internal/logger"
)

const tokenTTL = 7 * 24 * time.Hour

// providers registered by the last InitializeProviders call
var enabledProviders []string

// sets up the OAuth providers that have credentials configured
func InitializeProviders(cfg *config.Config) error {
	if cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Port
	}

	// configure cookie for OAuth redirects
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300, // 5 minutes, enough for OAuth flow
		HttpOnly: true,
		Secure:   strings.HasPrefix(baseURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	var providers []goth.Provider

	if id, secret := os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, google.New(id, secret, callbackURL(baseURL, "google"), "email", "profile"))
	}

	if id, secret := os.Getenv("GITHUB_CLIENT_ID"), os.Getenv("GITHUB_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, github.New(id, secret, callbackURL(baseURL, "github"), "user:email"))
	}

	if id, secret := os.Getenv("APPLE_CLIENT_ID"), os.Getenv("APPLE_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, apple.New(id, secret, callbackURL(baseURL, "apple"), nil, apple.ScopeName, apple.ScopeEmail))
	}

	goth.ClearProviders()

	enabledProviders = enabledProviders[:0]
	for _, p := range providers {
		enabledProviders = append(enabledProviders, p.Name())
	}

	if len(providers) == 0 {
		logger.Warn("no OAuth providers configured, sign in is disabled")
		return nil
	}

	goth.UseProviders(providers...)
	logger.Info("OAuth providers initialized", "providers", enabledProviders)

	return nil
}

// reports whether an OAuth provider is registered
func ProviderEnabled(name string) bool {
	return slices.Contains(enabledProviders, name)
}

func callbackURL(baseURL, provider string) string {
	return strings.TrimRight(baseURL, "/") + "/api/v1/auth/" + provider + "/callback"
}

// reports whether the email is on the admin allowlist (case-insensitive)
func IsAdminEmail(email string, allowlist []string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	for _, allowed := range allowlist {
		if strings.EqualFold(email, strings.TrimSpace(allowed)) {
			return true
		}
	}

	return false
}

// creates a JWT token for the user
func GenerateJWT(userID, email string, isAdmin bool) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	claims := Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// validates a JWT token and returns the claims
func ValidateJWT(tokenString string) (*Claims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
