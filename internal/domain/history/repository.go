package history

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) (int64, error)
	Update(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, id int64) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	ListByAnimal(ctx context.Context, animalID int64) ([]Entry, error)
	Delete(ctx context.Context, id int64) error
}
