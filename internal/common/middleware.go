package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalFromContext returns the authenticated user's claims, if any.
func PrincipalFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(principalKey).(*Claims)
	return claims, ok
}

// WithPrincipal stores claims on the context (used by tests and the auth
// middleware).
func WithPrincipal(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, principalKey, claims)
}

// AuthMiddleware validates the Bearer token and stores the principal in the
// request context. WebSocket clients cannot set headers, so a "token" query
// parameter is accepted as a fallback.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			tokenString = r.URL.Query().Get("token")
		}
		if tokenString == "" {
			WriteError(w, Unauthorized("authorization required"))
			return
		}

		claims, err := ValidToken(tokenString)
		if err != nil {
			WriteError(w, Unauthorized("invalid or expired token"))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), claims)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
