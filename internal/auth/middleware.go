package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/logger"
)

// validates JWT tokens and adds user info to context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			c.Abort()
			return
		}

		c.Next()
	}
}

// requires a valid token whose account is an admin right now.
// the token's own is_admin claim is not trusted.
func AdminAuthMiddleware(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			c.Abort()
			return
		}

		userID, _ := GetUserID(c)

		isAdmin, err := verifier.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("admin check failed",
				"user_id", userID,
				"error", err,
			)

			errors.Forbidden(c, "")
			c.Abort()
			return
		}

		if !isAdmin {
			errors.Forbidden(c, "admin access required")
			c.Abort()
			return
		}

		c.Set(ContextIsAdmin, true)
		c.Next()
	}
}

// validates JWT if present but doesn't require it
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := ValidateJWT(token); err == nil {
				setClaims(c, claims)
			}
		}

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}

func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		errors.Unauthorized(c, "authorization header required")
		return false
	}

	token, ok := bearerToken(authHeader)
	if !ok {
		errors.Unauthorized(c, "invalid authorization header format")
		return false
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		errors.Unauthorized(c, "invalid or expired token")
		return false
	}

	setClaims(c, claims)
	return true
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func setClaims(c *gin.Context, claims *Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
}
