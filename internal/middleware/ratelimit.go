package middleware

import (
	"fmt"
	"net/http"
	"time"

	"pet-adoption-shelter/internal/platform/metrics"
	"pet-adoption-shelter/internal/platform/respond"

	"github.com/go-chi/httprate"
)

// LoginRateLimitMessage arma el mensaje del 429 según la ventana configurada.
// Con la ventana por defecto (15m) es el texto histórico.
func LoginRateLimitMessage(window time.Duration) string {
	minutes := int(window.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	unit := "minutos"
	if minutes == 1 {
		unit = "minuto"
	}
	return fmt.Sprintf("Demasiados intentos de inicio de sesión desde esta IP, por favor intente de nuevo después de %d %s", minutes, unit)
}

// LoginRateLimit limita a `limit` requests por IP en una ventana deslizante de `window`.
// Se aplica antes del handler, sin importar si las credenciales son correctas.
// La clave es r.RemoteAddr: sólo TrustedRealIP puede reescribirla.
func LoginRateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	msg := LoginRateLimitMessage(window)
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.LoginRateLimited.Inc()
			LoggerFrom(r.Context()).Warn("login rate limit", map[string]any{"remote_addr": r.RemoteAddr})
			respond.Error(w, r, http.StatusTooManyRequests, msg)
		}),
	)
}
