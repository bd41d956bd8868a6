package history

import "time"

// Entry es un registro del historial médico de un animal.
// A diferencia de animales y solicitudes, el borrado es físico.
type Entry struct {
	ID          int64     `json:"id_historial"`
	AnimalID    int64     `json:"animal_id"`
	Fecha       time.Time `json:"fecha"`
	Diagnostico string    `json:"diagnostico"`
	Tratamiento string    `json:"tratamiento"`
	Veterinario string    `json:"veterinario"`
	Notas       string    `json:"notas"`
}
