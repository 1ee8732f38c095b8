package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID  = "user_id"
	ContextEmail   = "user_email"
	ContextIsAdmin = "is_admin"
)

// represents JWT claims. IsAdmin is a hint for clients only,
// admin routes re-check the account on every request.
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// answers whether an account currently holds admin rights
type AdminVerifier interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}
