package requests

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput       = errors.New("datos inválidos")
	ErrNotFound           = errors.New("solicitud no encontrada")
	ErrAnimalNotAvailable = errors.New("el animal no está disponible para adopción")
	ErrInvalidEstado      = errors.New("estado de solicitud inválido")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
)

// AnimalAvailability evita depender del paquete animals.
type AnimalAvailability interface {
	IsAvailable(ctx context.Context, animalID int64) (bool, error)
}

type Options struct {
	// EnforceTransitions activa la validación del grafo de estados en Update.
	// Apagado, el staff puede fijar cualquier estado válido.
	EnforceTransitions bool
}

type Service struct {
	repo    Repository
	animals AnimalAvailability
	opts    Options
	now     func() time.Time
}

func NewService(repo Repository, animals AnimalAvailability, opts Options) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		opts:    opts,
		now:     time.Now,
	}
}

// Create registra una solicitud del usuario autenticado. Siempre nace PENDIENTE
// y no modifica el estado del animal.
func (s *Service) Create(ctx context.Context, userID, animalID int64, observaciones string) (Request, error) {
	if userID <= 0 || animalID <= 0 {
		return Request{}, ErrInvalidInput
	}

	ok, err := s.animals.IsAvailable(ctx, animalID)
	if err != nil {
		return Request{}, err
	}
	if !ok {
		return Request{}, ErrAnimalNotAvailable
	}

	req := Request{
		UsuarioID:      userID,
		AnimalID:       animalID,
		Observaciones:  strings.TrimSpace(observaciones),
		Estado:         EstadoPendiente,
		Activo:         true,
		FechaSolicitud: s.now().UTC(),
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return Request{}, err
	}
	req.ID = id
	return req, nil
}

// Update cambia el estado (obligatorio) y opcionalmente las observaciones.
// observaciones nil => se conservan.
func (s *Service) Update(ctx context.Context, id int64, estado Estado, observaciones *string) (Request, error) {
	if id <= 0 {
		return Request{}, ErrNotFound
	}
	estado = Estado(strings.TrimSpace(string(estado)))
	if !estado.Valid() {
		return Request{}, ErrInvalidEstado
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Request{}, err
	}

	if s.opts.EnforceTransitions && !CanTransition(current.Estado, estado) {
		return Request{}, ErrInvalidTransition
	}

	current.Estado = estado
	if observaciones != nil {
		current.Observaciones = strings.TrimSpace(*observaciones)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Request{}, err
	}
	return current, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Request, error) {
	if id <= 0 {
		return Request{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, estado Estado) ([]Request, error) {
	estado = Estado(strings.TrimSpace(string(estado)))
	if estado != "" && !estado.Valid() {
		return nil, ErrInvalidEstado
	}
	return s.repo.ListActive(ctx, estado)
}

// ListByUser devuelve las solicitudes activas del usuario (GET /mias).
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Request, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListActiveByUser(ctx, userID)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}
