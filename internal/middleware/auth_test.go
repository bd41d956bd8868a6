package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption-shelter/internal/ports/auth"

	"github.com/stretchr/testify/assert"
)

type fakeVerifier map[string]auth.Claims

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	c, ok := f[token]
	if !ok {
		return auth.Claims{}, errors.New("token expired")
	}
	return c, nil
}

func gated(roles ...auth.Role) http.Handler {
	v := fakeVerifier{
		"admin-token":     {UserID: 1, Correo: "admin@x.com", Rol: auth.RoleAdmin},
		"adoptante-token": {UserID: 2, Correo: "a@a.com", Rol: auth.RoleAdoptante},
	}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, _ := GetClaims(r.Context())
		w.Header().Set("X-User", c.Correo)
		w.WriteHeader(http.StatusNoContent)
	})
	return AuthContext(v)(RequireAnyRole(roles...)(ok))
}

func call(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireAnyRole(t *testing.T) {
	h := gated(auth.RoleAdmin, auth.RoleVoluntario)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"sin token", "", http.StatusUnauthorized, `{"error":"Token requerido"}`},
		{"token expirado", "Bearer viejo", http.StatusForbidden, `{"error":"Token inválido o expirado"}`},
		{"esquema incorrecto", "Basic admin-token", http.StatusForbidden, `{"error":"Token inválido o expirado"}`},
		{"rol no permitido", "Bearer adoptante-token", http.StatusForbidden, `{"error":"No tiene permisos para este recurso"}`},
		{"admin", "Bearer admin-token", http.StatusNoContent, ""},
		{"bearer minúscula", "bearer admin-token", http.StatusNoContent, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := call(h, tc.header)
			assert.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestRequireAuth_AnyRole(t *testing.T) {
	v := fakeVerifier{"t": {UserID: 9, Correo: "v@v.com", Rol: auth.RoleVisitante}}
	h := AuthContext(v)(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	assert.Equal(t, http.StatusOK, call(h, "Bearer t").Code)
	assert.Equal(t, http.StatusUnauthorized, call(h, "").Code)
	assert.Equal(t, http.StatusForbidden, call(h, "Bearer x").Code)
}

func TestAuthContext_PublicRouteIgnoresBadToken(t *testing.T) {
	h := AuthContext(fakeVerifier{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetClaims(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, call(h, "Bearer basura").Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("BEARER   abc "))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken("Token abc"))
	assert.Equal(t, "", bearerToken(""))
}
