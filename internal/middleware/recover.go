package middleware

import (
	"net/http"
	"runtime/debug"

	"pet-adoption-shelter/internal/platform/respond"
)

// Recover atrapa panics, los loguea con stack y responde 500 sin exponer detalles.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			LoggerFrom(r.Context()).Error("panic", map[string]any{
				"panic": rec,
				"stack": string(debug.Stack()),
			})
			respond.Error(w, r, http.StatusInternalServerError, "Error interno del servidor")
		}()

		next.ServeHTTP(w, r)
	})
}
