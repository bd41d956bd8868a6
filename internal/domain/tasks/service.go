package tasks

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("datos inválidos")
	ErrNotFound     = errors.New("tarea no encontrada")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Titulo       string
	Descripcion  string
	Estado       string
	Prioridad    string
	FechaLimite  *time.Time
	VoluntarioID *int64
}

func (in Input) toTask() (Task, error) {
	t := Task{
		Titulo:       strings.TrimSpace(in.Titulo),
		Descripcion:  strings.TrimSpace(in.Descripcion),
		Estado:       strings.TrimSpace(in.Estado),
		Prioridad:    strings.TrimSpace(in.Prioridad),
		FechaLimite:  in.FechaLimite,
		VoluntarioID: in.VoluntarioID,
	}
	if t.Titulo == "" {
		return Task{}, ErrInvalidInput
	}
	if t.VoluntarioID != nil && *t.VoluntarioID <= 0 {
		return Task{}, ErrInvalidInput
	}
	if t.Estado == "" {
		t.Estado = EstadoPendiente
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Task, error) {
	t, err := in.toTask()
	if err != nil {
		return Task{}, err
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return Task{}, err
	}
	t.ID = id
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Task, error) {
	if id <= 0 {
		return Task{}, ErrNotFound
	}
	t, err := in.toTask()
	if err != nil {
		return Task{}, err
	}
	t.ID = id
	if err := s.repo.Update(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Task, error) {
	if id <= 0 {
		return Task{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, estado string) ([]Task, error) {
	return s.repo.List(ctx, strings.TrimSpace(estado))
}

func (s *Service) ListByVolunteer(ctx context.Context, voluntarioID int64) ([]Task, error) {
	if voluntarioID <= 0 {
		return []Task{}, nil
	}
	return s.repo.ListByVolunteer(ctx, voluntarioID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
