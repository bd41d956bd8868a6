package history

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput   = errors.New("datos inválidos")
	ErrNotFound       = errors.New("historial no encontrado")
	ErrAnimalNotFound = errors.New("animal no encontrado")
)

// AnimalLookup evita depender del paquete animals (rompe ciclos).
type AnimalLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	animals AnimalLookup
}

func NewService(repo Repository, animals AnimalLookup) *Service {
	return &Service{repo: repo, animals: animals}
}

type Input struct {
	AnimalID    int64
	Fecha       *time.Time
	Diagnostico string
	Tratamiento string
	Veterinario string
	Notas       string
}

func (s *Service) validate(ctx context.Context, in Input) (Input, error) {
	in.Diagnostico = strings.TrimSpace(in.Diagnostico)
	in.Tratamiento = strings.TrimSpace(in.Tratamiento)
	in.Veterinario = strings.TrimSpace(in.Veterinario)
	in.Notas = strings.TrimSpace(in.Notas)

	if in.AnimalID <= 0 || in.Fecha == nil || in.Diagnostico == "" {
		return Input{}, ErrInvalidInput
	}

	if s.animals != nil {
		ok, err := s.animals.Exists(ctx, in.AnimalID)
		if err != nil {
			return Input{}, err
		}
		if !ok {
			return Input{}, ErrAnimalNotFound
		}
	}
	return in, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Entry, error) {
	in, err := s.validate(ctx, in)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		AnimalID:    in.AnimalID,
		Fecha:       *in.Fecha,
		Diagnostico: in.Diagnostico,
		Tratamiento: in.Tratamiento,
		Veterinario: in.Veterinario,
		Notas:       in.Notas,
	}
	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return Entry{}, err
	}
	e.ID = id
	return e, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Entry, error) {
	if id <= 0 {
		return Entry{}, ErrNotFound
	}
	in, err := s.validate(ctx, in)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:          id,
		AnimalID:    in.AnimalID,
		Fecha:       *in.Fecha,
		Diagnostico: in.Diagnostico,
		Tratamiento: in.Tratamiento,
		Veterinario: in.Veterinario,
		Notas:       in.Notas,
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Entry, error) {
	if id <= 0 {
		return Entry{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID int64) ([]Entry, error) {
	if animalID <= 0 {
		return []Entry{}, nil
	}
	return s.repo.ListByAnimal(ctx, animalID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
