package login

import (
	"errors"
	"net"
	"net/http"
	"time"

	"pet-adoption-shelter/internal/middleware"
	"pet-adoption-shelter/internal/platform/audit"
	"pet-adoption-shelter/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

type RateLimit struct {
	Limit  int
	Window time.Duration
}

func RegisterRoutes(r chi.Router, svc *Service, rl RateLimit) {
	r.With(middleware.LoginRateLimit(rl.Limit, rl.Window)).Post("/login", loginHandler(svc))
}

type loginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// loginHandler godoc
// @Summary      Iniciar sesión
// @Description  Limitado por IP (LOGIN_RATE_LIMIT intentos cada LOGIN_RATE_WINDOW, por defecto 10 cada 15 minutos).
// @Tags         login
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credenciales"
// @Success      200  {object}  Result
// @Failure      401  {object}  respond.ErrorBody
// @Failure      429  {object}  respond.ErrorBody
// @Router       /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}

		ctx := audit.WithIP(r.Context(), clientIP(r))
		res, err := svc.Login(ctx, req.Correo, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidCredentials):
				respond.Error(w, r, http.StatusUnauthorized, "Credenciales inválidas")
			case errors.Is(err, ErrInactiveAccount):
				respond.Error(w, r, http.StatusUnauthorized, "Usuario inactivo")
			default:
				middleware.LoggerFrom(r.Context()).Error("login", map[string]any{"error": err.Error()})
				respond.Error(w, r, http.StatusInternalServerError, "Error al iniciar sesión")
			}
			return
		}

		respond.JSON(w, r, http.StatusOK, res)
	}
}

// clientIP: RemoteAddr es la IP del socket salvo detrás de un proxy confiable (TrustedRealIP).
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
