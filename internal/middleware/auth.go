// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"duitku/internal/token"
)

type ctxKey string

const userKey ctxKey = "user"

// TokenVerifier validates a signed bearer token string.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Auth is a middleware that enforces bearer-token authentication.
//
// It reads the Authorization header, strips the optional "Bearer " prefix,
// and verifies the token signature and expiry. A missing or invalid token
// fails the request with 401 before any handler logic runs.
//
// On success the authenticated user id is stored in the request context,
// so it can be used downstream.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "Missing token")
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the authenticated user id from the request
// context. Returns 0 if not found.
func GetUserIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(userKey).(int64); ok {
		return id
	}
	return 0
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
