package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption-shelter/internal/domain/tasks"
)

type TasksRepo struct {
	db *sql.DB
}

func NewTasksRepo(db *sql.DB) *TasksRepo {
	return &TasksRepo{db: db}
}

// id_voluntario sin usuario => error de entrada (400), como en memoria.
var errUnknownVolunteer = fmt.Errorf("%w: id_voluntario inexistente", tasks.ErrInvalidInput)

const taskColumns = `id_tarea, titulo, descripcion, estado, prioridad, fecha_limite, id_voluntario`

func (r *TasksRepo) Create(ctx context.Context, t tasks.Task) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_insertar_tarea_voluntario($1,$2,$3,$4,$5,$6)`,
		t.Titulo, t.Descripcion, t.Estado, t.Prioridad, toNullDate(t.FechaLimite), toNullInt64(t.VoluntarioID),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, errUnknownVolunteer
		}
		return 0, fmt.Errorf("postgres: insertar tarea: %w", err)
	}
	return id, nil
}

func (r *TasksRepo) Update(ctx context.Context, t tasks.Task) error {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_editar_tarea_voluntario($1,$2,$3,$4,$5,$6,$7)`,
		t.ID, toNullInt64(t.VoluntarioID), t.Titulo, t.Descripcion, t.Estado, t.Prioridad, toNullDate(t.FechaLimite),
	).Scan(&n)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errUnknownVolunteer
		}
		return fmt.Errorf("postgres: editar tarea: %w", err)
	}
	return affected(n, tasks.ErrNotFound)
}

func (r *TasksRepo) GetByID(ctx context.Context, id int64) (tasks.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM vw_tareas WHERE id_tarea = $1`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tasks.Task{}, tasks.ErrNotFound
		}
		return tasks.Task{}, err
	}
	return t, nil
}

func (r *TasksRepo) List(ctx context.Context, estado string) ([]tasks.Task, error) {
	if estado != "" {
		return r.query(ctx, `SELECT `+taskColumns+` FROM vw_tareas WHERE estado = $1 ORDER BY id_tarea`, estado)
	}
	return r.query(ctx, `SELECT `+taskColumns+` FROM vw_tareas ORDER BY id_tarea`)
}

func (r *TasksRepo) ListByVolunteer(ctx context.Context, voluntarioID int64) ([]tasks.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM vw_tareas WHERE id_voluntario = $1 ORDER BY id_tarea`, voluntarioID)
}

func (r *TasksRepo) Delete(ctx context.Context, id int64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT pa_eliminar_tarea_voluntario($1)`, id).Scan(&n); err != nil {
		return fmt.Errorf("postgres: eliminar tarea: %w", err)
	}
	return affected(n, tasks.ErrNotFound)
}

func (r *TasksRepo) query(ctx context.Context, q string, args ...any) ([]tasks.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tasks.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTask(s scanner) (tasks.Task, error) {
	var (
		t      tasks.Task
		limite sql.NullTime
		vol    sql.NullInt64
	)
	if err := s.Scan(&t.ID, &t.Titulo, &t.Descripcion, &t.Estado, &t.Prioridad, &limite, &vol); err != nil {
		return tasks.Task{}, err
	}
	t.FechaLimite = fromNullDate(limite)
	if vol.Valid {
		v := vol.Int64
		t.VoluntarioID = &v
	}
	return t, nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
