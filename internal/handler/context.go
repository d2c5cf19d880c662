package handler

import (
	"context"
	"net/http"
	"strings"
)

// contextKey defines a custom type for context keys to avoid collisions.
type contextKey string

const tokenContextKey = contextKey("bearerToken")

// BearerToken lifts an Authorization bearer token into the request context.
// The token is carried opaquely; this API performs no verification.
func BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			r = r.WithContext(context.WithValue(r.Context(), tokenContextKey, token))
		}
		next.ServeHTTP(w, r)
	})
}

// Token retrieves the bearer token from the request context, if any.
func Token(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey).(string); ok {
		return token
	}
	return ""
}
