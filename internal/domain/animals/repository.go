package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) (int64, error)
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id int64) (Animal, error)
	// ListActive devuelve sólo activos; estado vacío = sin filtro.
	ListActive(ctx context.Context, estado Estado) ([]Animal, error)
	Deactivate(ctx context.Context, id int64) error
}
