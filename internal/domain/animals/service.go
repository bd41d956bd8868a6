package animals

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("datos inválidos")
	ErrNotFound     = errors.New("animal no encontrado")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input se usa tanto para alta como para edición (reemplazo completo).
type Input struct {
	Nombre       string
	Especie      string
	Raza         string
	Edad         *int
	Sexo         string
	Descripcion  string
	Estado       Estado
	FotoURL      string
	FechaIngreso *time.Time
}

func (in Input) normalize() (Input, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Especie = strings.TrimSpace(in.Especie)
	in.Raza = strings.TrimSpace(in.Raza)
	in.Sexo = strings.TrimSpace(in.Sexo)
	in.Descripcion = strings.TrimSpace(in.Descripcion)
	in.FotoURL = strings.TrimSpace(in.FotoURL)
	in.Estado = Estado(strings.TrimSpace(string(in.Estado)))

	if in.Nombre == "" || in.Especie == "" {
		return Input{}, ErrInvalidInput
	}
	if in.Edad != nil && *in.Edad < 0 {
		return Input{}, ErrInvalidInput
	}
	if in.Estado != "" && !in.Estado.Valid() {
		return Input{}, ErrInvalidInput
	}
	return in, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Animal, error) {
	in, err := in.normalize()
	if err != nil {
		return Animal{}, err
	}
	if in.Estado == "" {
		in.Estado = EstadoDisponible
	}

	fecha := in.FechaIngreso
	if fecha == nil {
		t := s.now().UTC().Truncate(24 * time.Hour)
		fecha = &t
	}

	a := Animal{
		Nombre:       in.Nombre,
		Especie:      in.Especie,
		Raza:         in.Raza,
		Edad:         in.Edad,
		Sexo:         in.Sexo,
		Descripcion:  in.Descripcion,
		Estado:       in.Estado,
		FotoURL:      in.FotoURL,
		FechaIngreso: fecha,
		Activo:       true,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return Animal{}, err
	}
	a.ID = id
	return a, nil
}

// Update reemplaza la ficha completa. Estado vacío conserva el actual.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Animal, error) {
	if id <= 0 {
		return Animal{}, ErrInvalidInput
	}
	in, err := in.normalize()
	if err != nil {
		return Animal{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	current.Nombre = in.Nombre
	current.Especie = in.Especie
	current.Raza = in.Raza
	current.Edad = in.Edad
	current.Sexo = in.Sexo
	current.Descripcion = in.Descripcion
	current.FotoURL = in.FotoURL
	if in.Estado != "" {
		current.Estado = in.Estado
	}
	if in.FechaIngreso != nil {
		current.FechaIngreso = in.FechaIngreso
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Animal{}, err
	}
	return current, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Animal, error) {
	if id <= 0 {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, estado Estado) ([]Animal, error) {
	estado = Estado(strings.TrimSpace(string(estado)))
	if estado != "" && !estado.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.ListActive(ctx, estado)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}

// IsAvailable responde si el animal puede recibir una solicitud.
// Un id inexistente no es error: simplemente no está disponible.
func (s *Service) IsAvailable(ctx context.Context, id int64) (bool, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return a.Available(), nil
}

// Exists lo usa historial para validar animal_id.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
