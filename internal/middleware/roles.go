package middleware

import (
	"net/http"

	"pet-adoption-shelter/internal/platform/respond"
	"pet-adoption-shelter/internal/ports/auth"
)

const (
	msgTokenRequired = "Token requerido"
	msgTokenInvalid  = "Token inválido o expirado"
	msgRoleForbidden = "No tiene permisos para este recurso"
)

// RequireAuth exige un token válido, sin importar el rol.
func RequireAuth(next http.Handler) http.Handler {
	return RequireAnyRole()(next)
}

// RequireAnyRole permite el request sólo si el token es válido y su rol está en roles.
// Sin roles => cualquier usuario autenticado.
//   - sin token                 => 401
//   - token inválido o expirado => 403
//   - rol fuera del conjunto    => 403
func RequireAnyRole(roles ...auth.Role) func(http.Handler) http.Handler {
	allowed := make(map[auth.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				if tokenRejected(r.Context()) {
					respond.Error(w, r, http.StatusForbidden, msgTokenInvalid)
					return
				}
				respond.Error(w, r, http.StatusUnauthorized, msgTokenRequired)
				return
			}

			if len(allowed) > 0 {
				if _, ok := allowed[claims.Rol]; !ok {
					LoggerFrom(r.Context()).Info("rol no permitido", map[string]any{
						"user_id": claims.UserID,
						"rol":     string(claims.Rol),
					})
					respond.Error(w, r, http.StatusForbidden, msgRoleForbidden)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
