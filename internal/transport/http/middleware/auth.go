package middleware

import (
	"context"
	"net/http"

	"healthyideas/internal/auth"
	"healthyideas/internal/httputil"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

// RequireAuth rejects requests that do not carry a verifiable
// credential. A missing token and an invalid token produce the same
// unauthorized response; anonymous and bad-token requests behave
// identically.
func RequireAuth(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := tokens.Authenticate(r)
			if !ok {
				httputil.WriteUnauthorized(w, "Missing or invalid authentication token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the verified identity from the request
// context. Returns false when the request did not pass RequireAuth.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*auth.Identity)
	return identity, ok
}
