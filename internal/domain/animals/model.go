package animals

import "time"

// Estado del animal dentro del refugio.
// @Enum DISPONIBLE, ADOPTADO, EN_CUARENTENA, RESERVADO
type Estado string

const (
	EstadoDisponible   Estado = "DISPONIBLE"
	EstadoAdoptado     Estado = "ADOPTADO"
	EstadoEnCuarentena Estado = "EN_CUARENTENA"
	EstadoReservado    Estado = "RESERVADO"
)

func (e Estado) Valid() bool {
	switch e {
	case EstadoDisponible, EstadoAdoptado, EstadoEnCuarentena, EstadoReservado:
		return true
	default:
		return false
	}
}

// Animal es la ficha de un animal del refugio.
// Activo=false es la baja lógica: sigue accesible por id pero sale del listado.
type Animal struct {
	ID           int64      `json:"id_animal"`
	Nombre       string     `json:"nombre"`
	Especie      string     `json:"especie"`
	Raza         string     `json:"raza"`
	Edad         *int       `json:"edad"`
	Sexo         string     `json:"sexo"`
	Descripcion  string     `json:"descripcion"`
	Estado       Estado     `json:"estado"`
	FotoURL      string     `json:"foto_url"`
	FechaIngreso *time.Time `json:"fecha_ingreso"`
	Activo       bool       `json:"activo"`
}

// Available: sólo un animal DISPONIBLE y activo puede recibir solicitudes.
func (a Animal) Available() bool {
	return a.Activo && a.Estado == EstadoDisponible
}
