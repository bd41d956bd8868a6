package login

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-shelter/internal/domain/users"
	"pet-adoption-shelter/internal/platform/audit"
	"pet-adoption-shelter/internal/platform/metrics"
	"pet-adoption-shelter/internal/platform/password"
	"pet-adoption-shelter/internal/ports/auth"
)

var (
	// Mismo error para correo inexistente y contraseña incorrecta.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveAccount    = errors.New("usuario inactivo")
)

// UserLookup es lo único que login necesita de usuarios.
type UserLookup interface {
	GetByCorreo(ctx context.Context, correo string) (users.User, error)
}

// Usuario es la proyección pública devuelta junto al token (sin hash).
type Usuario struct {
	ID        int64     `json:"id_usuario"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	Telefono  string    `json:"telefono"`
	Direccion string    `json:"direccion"`
	Rol       auth.Role `json:"rol"`
	Estado    string    `json:"estado"`
}

type Result struct {
	Token   string  `json:"token"`
	Usuario Usuario `json:"usuario"`
}

type Service struct {
	users  UserLookup
	issuer auth.TokenIssuer
	audit  audit.Recorder
	now    func() time.Time
}

func NewService(lookup UserLookup, issuer auth.TokenIssuer, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{
		users:  lookup,
		issuer: issuer,
		audit:  recorder,
		now:    time.Now,
	}
}

// Login valida credenciales y emite un token de sesión.
// Cada intento queda en el log de acceso con su resultado.
func (s *Service) Login(ctx context.Context, correo, plain string) (Result, error) {
	correo = strings.TrimSpace(correo)

	res, outcome, err := s.login(ctx, correo, plain)

	entry := audit.Entry{
		At:      s.now(),
		Correo:  correo,
		Outcome: outcome,
		IP:      audit.IPFrom(ctx),
	}
	if outcome == audit.OutcomeError && err != nil {
		entry.Detail = err.Error()
	}
	s.audit.Record(ctx, entry)
	metrics.LoginAttempts.WithLabelValues(string(outcome)).Inc()

	return res, err
}

func (s *Service) login(ctx context.Context, correo, plain string) (Result, audit.Outcome, error) {
	if correo == "" || plain == "" {
		return Result{}, audit.OutcomeInvalidCredentials, ErrInvalidCredentials
	}

	u, err := s.users.GetByCorreo(ctx, correo)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return Result{}, audit.OutcomeInvalidCredentials, ErrInvalidCredentials
		}
		return Result{}, audit.OutcomeError, fmt.Errorf("login: lookup: %w", err)
	}
	if u.PasswordHash == "" {
		return Result{}, audit.OutcomeInvalidCredentials, ErrInvalidCredentials
	}

	if err := password.Compare(u.PasswordHash, plain); err != nil {
		return Result{}, audit.OutcomeInvalidCredentials, ErrInvalidCredentials
	}

	// El estado se revisa recién con la contraseña correcta.
	if !u.Active() {
		return Result{}, audit.OutcomeInactiveAccount, ErrInactiveAccount
	}

	token, err := s.issuer.Issue(ctx, auth.Claims{UserID: u.ID, Correo: u.Correo, Rol: u.Rol})
	if err != nil {
		return Result{}, audit.OutcomeError, fmt.Errorf("login: issue token: %w", err)
	}

	return Result{
		Token: token,
		Usuario: Usuario{
			ID:        u.ID,
			Nombre:    u.Nombre,
			Correo:    u.Correo,
			Telefono:  u.Telefono,
			Direccion: u.Direccion,
			Rol:       u.Rol,
			Estado:    string(u.Estado),
		},
	}, audit.OutcomeSuccess, nil
}
