package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost es el factor de bcrypt usado para todos los hashes del sistema.
const Cost = 10

var ErrMismatch = errors.New("password mismatch")

// Hash devuelve el hash bcrypt de plain.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("password.Hash: %w", err)
	}
	return string(b), nil
}

// Compare devuelve nil si plain coincide con hash, ErrMismatch si no.
// Un hash mal formado también se reporta como ErrMismatch.
func Compare(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}
