package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption-shelter/internal/platform/password"
	"pet-adoption-shelter/internal/ports/auth"
)

var (
	ErrInvalidInput     = errors.New("datos incompletos o inválidos")
	ErrNotFound         = errors.New("usuario no encontrado")
	ErrDuplicateEmail   = errors.New("el correo ya está registrado")
	ErrRoleNotAllowed   = errors.New("rol no permitido para registro público")
	ErrPasswordRequired = errors.New("la contraseña es requerida")
)

// publicRoles son los roles que alguien puede elegir al registrarse solo.
var publicRoles = map[auth.Role]struct{}{
	auth.RoleAdoptante: {},
	auth.RoleVisitante: {},
}

type Service struct {
	repo Repository
	now  func() time.Time
	hash func(string) (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		hash: password.Hash,
	}
}

type CreateInput struct {
	Nombre    string
	Correo    string
	Telefono  string
	Direccion string
	Rol       string
	Password  string
}

type UpdateInput struct {
	Nombre    string
	Correo    string
	Telefono  string
	Direccion string
	Rol       string
}

// Register es el alta pública: sólo ADOPTANTE (default) o VISITANTE.
func (s *Service) Register(ctx context.Context, in CreateInput) (User, error) {
	rol := auth.Role(strings.TrimSpace(in.Rol))
	if rol == "" {
		rol = auth.RoleAdoptante
	}
	if _, ok := publicRoles[rol]; !ok {
		if !rol.Valid() {
			return User{}, ErrInvalidInput
		}
		return User{}, ErrRoleNotAllowed
	}
	in.Rol = string(rol)
	return s.create(ctx, in)
}

// CreateByAdmin permite cualquier rol válido.
func (s *Service) CreateByAdmin(ctx context.Context, in CreateInput) (User, error) {
	if strings.TrimSpace(in.Rol) == "" {
		in.Rol = string(auth.RoleAdoptante)
	}
	return s.create(ctx, in)
}

func (s *Service) create(ctx context.Context, in CreateInput) (User, error) {
	rol, ok := auth.ParseRole(in.Rol)
	if !ok {
		return User{}, ErrInvalidInput
	}
	nombre := strings.TrimSpace(in.Nombre)
	correo := strings.TrimSpace(in.Correo)
	if nombre == "" || correo == "" {
		return User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Password) == "" {
		return User{}, ErrPasswordRequired
	}

	h, err := s.hash(in.Password)
	if err != nil {
		return User{}, err
	}

	u := User{
		Nombre:        nombre,
		Correo:        correo,
		Telefono:      strings.TrimSpace(in.Telefono),
		Direccion:     strings.TrimSpace(in.Direccion),
		Rol:           rol,
		PasswordHash:  h,
		Estado:        EstadoActivo,
		FechaRegistro: s.now().UTC(),
	}
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}

// Update modifica datos de perfil y rol. La contraseña va por ChangePassword.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (User, error) {
	if id <= 0 {
		return User{}, ErrNotFound
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	nombre := strings.TrimSpace(in.Nombre)
	correo := strings.TrimSpace(in.Correo)
	if nombre == "" || correo == "" {
		return User{}, ErrInvalidInput
	}
	rol := current.Rol
	if strings.TrimSpace(in.Rol) != "" {
		r, ok := auth.ParseRole(in.Rol)
		if !ok {
			return User{}, ErrInvalidInput
		}
		rol = r
	}

	current.Nombre = nombre
	current.Correo = correo
	current.Telefono = strings.TrimSpace(in.Telefono)
	current.Direccion = strings.TrimSpace(in.Direccion)
	current.Rol = rol

	if err := s.repo.Update(ctx, current); err != nil {
		return User{}, err
	}
	return current, nil
}

// ChangePassword siempre re-hashea antes de persistir.
func (s *Service) ChangePassword(ctx context.Context, id int64, plain string) error {
	if strings.TrimSpace(plain) == "" {
		return ErrPasswordRequired
	}
	if id <= 0 {
		return ErrNotFound
	}
	h, err := s.hash(plain)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, h)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.ListActive(ctx)
}

// GetByCorreo busca por correo exacto (sólo se recortan espacios).
func (s *Service) GetByCorreo(ctx context.Context, correo string) (User, error) {
	correo = strings.TrimSpace(correo)
	if correo == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByCorreo(ctx, correo)
}

// EnsureAdmin crea la cuenta ADMIN inicial si el correo no existe todavía.
// Devuelve created=false si ya estaba.
func (s *Service) EnsureAdmin(ctx context.Context, nombre, correo, plain string) (User, bool, error) {
	existing, err := s.GetByCorreo(ctx, correo)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, false, err
	}

	u, err := s.create(ctx, CreateInput{
		Nombre:   nombre,
		Correo:   correo,
		Rol:      string(auth.RoleAdmin),
		Password: plain,
	})
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}
