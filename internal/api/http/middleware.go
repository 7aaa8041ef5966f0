package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"equiprent-backend/internal/security"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware validates the bearer token and stores the actor claims
// in the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, fmt.Errorf("missing authorization header"))
				return
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeError(w, http.StatusUnauthorized, fmt.Errorf("authorization header must be a bearer token"))
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, err)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the authenticated actor's user id, or nil
// when the request was not authenticated.
func ActorFromContext(ctx context.Context) *int32 {
	claims, ok := ctx.Value(actorKey).(*security.ActorClaims)
	if !ok {
		return nil
	}
	return &claims.UserID
}
