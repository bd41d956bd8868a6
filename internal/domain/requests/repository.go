package requests

import "context"

type Repository interface {
	// Create persiste una solicitud nueva. Los adapters que puedan deben
	// re-validar la disponibilidad del animal y devolver ErrAnimalNotAvailable.
	Create(ctx context.Context, r Request) (int64, error)
	Update(ctx context.Context, r Request) error
	GetByID(ctx context.Context, id int64) (Request, error)
	ListActive(ctx context.Context, estado Estado) ([]Request, error)
	ListActiveByUser(ctx context.Context, userID int64) ([]Request, error)
	Deactivate(ctx context.Context, id int64) error
}
