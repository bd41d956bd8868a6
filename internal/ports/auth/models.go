package auth

import "strings"

// Role es el rol del usuario dentro del refugio.
// @Enum ADMIN, VOLUNTARIO, ADOPTANTE, VISITANTE
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleVoluntario Role = "VOLUNTARIO"
	RoleAdoptante  Role = "ADOPTANTE"
	RoleVisitante  Role = "VISITANTE"
)

// Valid compara exacto (case-sensitive) contra los roles enumerados.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVoluntario, RoleAdoptante, RoleVisitante:
		return true
	default:
		return false
	}
}

// ParseRole recorta espacios pero no normaliza mayúsculas: "admin" no es un rol.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.TrimSpace(s))
	return r, r.Valid()
}

// Claims representa la información extraída del token.
type Claims struct {
	UserID int64
	Correo string
	Rol    Role
}
