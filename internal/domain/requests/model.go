package requests

import "time"

// Estado de una solicitud de adopción.
// @Enum PENDIENTE, APROBADA, RECHAZADA, COMPLETADA, CANCELADA
type Estado string

const (
	EstadoPendiente  Estado = "PENDIENTE"
	EstadoAprobada   Estado = "APROBADA"
	EstadoRechazada  Estado = "RECHAZADA"
	EstadoCompletada Estado = "COMPLETADA"
	EstadoCancelada  Estado = "CANCELADA"
)

func (e Estado) Valid() bool {
	_, ok := transitions[e]
	return ok
}

// transitions define el ciclo de vida. Estados sin salida son terminales.
var transitions = map[Estado][]Estado{
	EstadoPendiente:  {EstadoAprobada, EstadoRechazada, EstadoCancelada},
	EstadoAprobada:   {EstadoCompletada, EstadoCancelada},
	EstadoRechazada:  nil,
	EstadoCompletada: nil,
	EstadoCancelada:  nil,
}

// CanTransition indica si from -> to respeta el grafo. Mismo estado siempre se permite.
func CanTransition(from, to Estado) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Request es una solicitud de adopción de un usuario sobre un animal.
type Request struct {
	ID             int64     `json:"id_solicitud"`
	UsuarioID      int64     `json:"id_usuario"`
	AnimalID       int64     `json:"id_animal"`
	Observaciones  string    `json:"observaciones"`
	Estado         Estado    `json:"estado"`
	Activo         bool      `json:"activo"`
	FechaSolicitud time.Time `json:"fecha_solicitud"`
}
