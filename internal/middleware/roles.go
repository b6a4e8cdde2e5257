package middleware

import (
	"context"
	"net/http"
	"strings"
)

// RoleLookup resuelve el rol vigente de un actor (no confiamos en el rol del token).
type RoleLookup interface {
	RoleOf(ctx context.Context, actorID string) (string, error)
}

// RequireRole corta con 401 si no hay identidad y con 403 si el rol no está permitido.
func RequireRole(lookup RoleLookup, allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || strings.TrimSpace(claims.UserID) == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			role, err := lookup.RoleOf(r.Context(), claims.UserID)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			for _, a := range allowed {
				if a == role {
					claims.Role = role
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
					return
				}
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}
