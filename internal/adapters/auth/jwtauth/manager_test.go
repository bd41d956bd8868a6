package jwtauth

import (
	"context"
	"testing"
	"time"

	"pet-adoption-shelter/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-enough-entropy-123"

func TestManager_IssueVerify_RoundTrip(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	in := auth.Claims{UserID: 7, Correo: "a@a.com", Rol: auth.RoleAdoptante}
	tok, err := m.Issue(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestManager_Verify_Expired(t *testing.T) {
	m, err := NewManager(testSecret, time.Minute)
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return past }
	tok, err := m.Issue(context.Background(), auth.Claims{UserID: 1, Correo: "x@x.com", Rol: auth.RoleAdmin})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewManager("another-secret-another-secret-999", time.Hour)
	require.NoError(t, err)

	tok, err := issuer.Issue(context.Background(), auth.Claims{UserID: 1, Correo: "x@x.com", Rol: auth.RoleAdmin})
	require.NoError(t, err)

	_, err = other.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Verify_RejectsUnknownRoleAndAlgNone(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	// rol en minúsculas: firmado correctamente pero no es un rol enumerado
	bad := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		ID: 1, Correo: "x@x.com", Rol: "admin",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := bad.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = m.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		ID: 1, Correo: "x@x.com", Rol: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Verify_Empty(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.ErrorIs(t, err, ErrSecretMissing)

	_, err = NewManager(testSecret, 0)
	assert.Error(t, err)
}
