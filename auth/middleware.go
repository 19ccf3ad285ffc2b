// HTTP middleware guarding the protected routes. It extracts the bearer token
// from the Authorization header, verifies it, and places the authenticated
// user's identity into the request context for the downstream handler.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/kicau-go/apperror"
)

// ContextKey is a custom type for context keys to avoid collisions with other packages.
type ContextKey string

const (
	// UserIDKey is the context key under which the authenticated user's id is stored.
	UserIDKey ContextKey = "userID"
	// UsernameKey is the context key under which the authenticated user's username is stored.
	UsernameKey ContextKey = "username"
)

// JWTMiddleware returns middleware that rejects requests without a valid
// bearer token. Missing header, malformed header, bad signature, and expired
// token all produce the same 401 authorization error.
func JWTMiddleware(tokens *TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewUnauthorizedError("Authorization header is missing", nil))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewUnauthorizedError("Authorization header format must be Bearer {token}", nil))
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				WriteError(w, r, apperror.NewUnauthorizedError("invalid token", err))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext retrieves the authenticated user's id from the request
// context. Returns 0 and false if it is not present.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetUsernameFromContext retrieves the authenticated user's username from the
// request context.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
