package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma un token de sesión para las claims dadas.
type TokenIssuer interface {
	Issue(ctx context.Context, c Claims) (string, error)
}
