package users

import "context"

type Repository interface {
	// Create devuelve ErrDuplicateEmail si el correo ya existe.
	Create(ctx context.Context, u User) (int64, error)
	// Update no toca password_hash ni estado.
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	GetByID(ctx context.Context, id int64) (User, error)
	// GetByCorreo compara el correo tal como está almacenado.
	GetByCorreo(ctx context.Context, correo string) (User, error)
	ListActive(ctx context.Context) ([]User, error)
	Deactivate(ctx context.Context, id int64) error
}
