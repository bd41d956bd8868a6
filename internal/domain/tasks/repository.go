package tasks

import "context"

type Repository interface {
	Create(ctx context.Context, t Task) (int64, error)
	Update(ctx context.Context, t Task) error
	GetByID(ctx context.Context, id int64) (Task, error)
	// List filtra por estado si no está vacío.
	List(ctx context.Context, estado string) ([]Task, error)
	ListByVolunteer(ctx context.Context, voluntarioID int64) ([]Task, error)
	Delete(ctx context.Context, id int64) error
}
