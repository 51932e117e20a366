// Package middleware provides HTTP middleware for the cheff API.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"cheff-backend/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userIDKey is the context key for storing the authenticated user ID.
const userIDKey contextKey = "user_id"

// UserID extracts the authenticated user ID from the context.
// Returns 0 if not found.
func UserID(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey).(int64)
	return userID
}

// RequireAuth returns a middleware that validates bearer tokens.
// A missing token yields 401, an invalid or expired one 403. On success the
// user ID is added to the request context for downstream handlers.
func RequireAuth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeAuthError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
				return
			}

			userID, err := jwtManager.Validate(parts[1])
			if err != nil {
				writeAuthError(w, http.StatusForbidden, auth.ErrInvalidToken.Error())
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
