package login

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-adoption-shelter/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postLogin(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "198.51.100.9:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_LoginResponses(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := chi.NewRouter()
	RegisterRoutes(r, svc, RateLimit{Limit: 100, Window: time.Minute})

	rec := postLogin(r, `{"correo":"a@a.com","password":"secreta"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password_hash")

	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "a@a.com", res.Usuario.Correo)

	rec = postLogin(r, `{"correo":"a@a.com","password":"mal"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Credenciales inválidas"}`, rec.Body.String())

	rec = postLogin(r, `{"correo":"baja@a.com","password":"secreta"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Usuario inactivo"}`, rec.Body.String())
}

func TestHandler_RateLimitedAfterTen(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := chi.NewRouter()
	RegisterRoutes(r, svc, RateLimit{Limit: 10, Window: 15 * time.Minute})

	for i := 0; i < 10; i++ {
		rec := postLogin(r, `{"correo":"a@a.com","password":"mal"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "intento %d", i+1)
	}

	// el 11° se rechaza aunque las credenciales sean correctas
	rec := postLogin(r, `{"correo":"a@a.com","password":"secreta"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, middleware.LoginRateLimitMessage(15*time.Minute), body["error"])
}
