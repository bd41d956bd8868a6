package users

import (
	"time"

	"pet-adoption-shelter/internal/ports/auth"
)

// Estado de la cuenta. INACTIVO es la baja lógica.
// @Enum ACTIVO, INACTIVO
type Estado string

const (
	EstadoActivo   Estado = "ACTIVO"
	EstadoInactivo Estado = "INACTIVO"
)

// User es la cuenta de una persona del refugio. El hash nunca se serializa.
type User struct {
	ID            int64     `json:"id_usuario"`
	Nombre        string    `json:"nombre"`
	Correo        string    `json:"correo"`
	Telefono      string    `json:"telefono"`
	Direccion     string    `json:"direccion"`
	Rol           auth.Role `json:"rol"`
	PasswordHash  string    `json:"-"`
	Estado        Estado    `json:"estado"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

func (u User) Active() bool { return u.Estado == EstadoActivo }
