package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-adoption-shelter/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey        ctxKey = "claims"
	tokenRejectedKey ctxKey = "token_rejected"
)

// AuthContext:
// - Sin header Authorization => el request sigue sin claims.
// - Bearer token válido => setea claims en el contexto.
// - Token presente pero inválido/expirado => se marca como rechazado.
// Los gates (RequireAuth / RequireAnyRole) deciden 401 vs 403.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(raw)
			if token == "" || verifier == nil {
				ctx := context.WithValue(r.Context(), tokenRejectedKey, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				LoggerFrom(r.Context()).Debug("token rechazado", map[string]any{"error": err.Error()})
				ctx := context.WithValue(r.Context(), tokenRejectedKey, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// WithClaims inyecta claims directamente (tests de handlers).
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func tokenRejected(ctx context.Context) bool {
	v, _ := ctx.Value(tokenRejectedKey).(bool)
	return v
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
