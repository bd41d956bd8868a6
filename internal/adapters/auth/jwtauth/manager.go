package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-shelter/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrSecretMissing = errors.New("jwt secret is empty")
)

// sessionClaims es el payload firmado: {id, correo, rol} + claims registradas.
type sessionClaims struct {
	ID     int64  `json:"id"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

// Manager emite y verifica tokens HS256 con un secreto compartido.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretMissing
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwtauth: ttl must be positive, got %s", ttl)
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Issue(_ context.Context, c auth.Claims) (string, error) {
	if c.UserID <= 0 || !c.Rol.Valid() {
		return "", fmt.Errorf("jwtauth: cannot issue token for claims %+v", c)
	}

	now := m.now()
	claims := sessionClaims{
		ID:     c.UserID,
		Correo: c.Correo,
		Rol:    string(c.Rol),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwtauth: sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var sc sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &sc,
		func(_ *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.Claims{}, ErrTokenExpired
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	rol, ok := auth.ParseRole(sc.Rol)
	if !ok || sc.ID <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: malformed claims", ErrTokenInvalid)
	}

	return auth.Claims{
		UserID: sc.ID,
		Correo: sc.Correo,
		Rol:    rol,
	}, nil
}
