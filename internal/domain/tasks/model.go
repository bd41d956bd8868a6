package tasks

import "time"

// EstadoPendiente es el estado inicial si no se indica otro. El estado es texto libre.
const EstadoPendiente = "PENDIENTE"

// Task es una tarea asignable a un voluntario.
type Task struct {
	ID           int64      `json:"id_tarea"`
	Titulo       string     `json:"titulo"`
	Descripcion  string     `json:"descripcion"`
	Estado       string     `json:"estado"`
	Prioridad    string     `json:"prioridad"`
	FechaLimite  *time.Time `json:"fecha_limite"`
	VoluntarioID *int64     `json:"id_voluntario"`
}
