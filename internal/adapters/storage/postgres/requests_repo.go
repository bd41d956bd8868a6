package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption-shelter/internal/domain/requests"
)

type RequestsRepo struct {
	db *sql.DB
}

func NewRequestsRepo(db *sql.DB) *RequestsRepo {
	return &RequestsRepo{db: db}
}

const requestColumns = `id_solicitud, id_usuario, id_animal, observaciones, estado, activo, fecha_solicitud`

// Create delega en pa_crear_solicitud_adopcion, que re-valida la disponibilidad
// del animal con la fila bloqueada.
func (r *RequestsRepo) Create(ctx context.Context, req requests.Request) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_crear_solicitud_adopcion($1,$2,$3,$4)`,
		req.UsuarioID, req.AnimalID, req.Observaciones, req.FechaSolicitud,
	).Scan(&id)
	if err != nil {
		if isAnimalNotAvailable(err) {
			return 0, requests.ErrAnimalNotAvailable
		}
		return 0, fmt.Errorf("postgres: crear solicitud: %w", err)
	}
	return id, nil
}

func (r *RequestsRepo) Update(ctx context.Context, req requests.Request) error {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_actualizar_estado_solicitud($1,$2,$3)`,
		req.ID, string(req.Estado), req.Observaciones,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("postgres: actualizar solicitud: %w", err)
	}
	return affected(n, requests.ErrNotFound)
}

// GetByID lee de la tabla: una solicitud desactivada sigue accesible por id.
func (r *RequestsRepo) GetByID(ctx context.Context, id int64) (requests.Request, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+requestColumns+` FROM solicitudes_adopcion WHERE id_solicitud = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return requests.Request{}, requests.ErrNotFound
		}
		return requests.Request{}, err
	}
	return req, nil
}

func (r *RequestsRepo) ListActive(ctx context.Context, estado requests.Estado) ([]requests.Request, error) {
	if estado != "" {
		return r.query(ctx,
			`SELECT `+requestColumns+` FROM vw_solicitudes_adopcion_activas WHERE estado = $1 ORDER BY id_solicitud DESC`,
			string(estado))
	}
	return r.query(ctx, `SELECT `+requestColumns+` FROM vw_solicitudes_adopcion_activas ORDER BY id_solicitud DESC`)
}

func (r *RequestsRepo) ListActiveByUser(ctx context.Context, userID int64) ([]requests.Request, error) {
	return r.query(ctx,
		`SELECT `+requestColumns+` FROM vw_solicitudes_adopcion_activas WHERE id_usuario = $1 ORDER BY id_solicitud DESC`,
		userID)
}

func (r *RequestsRepo) Deactivate(ctx context.Context, id int64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT pa_desactivar_solicitud_adopcion($1)`, id).Scan(&n); err != nil {
		return fmt.Errorf("postgres: desactivar solicitud: %w", err)
	}
	return affected(n, requests.ErrNotFound)
}

func (r *RequestsRepo) query(ctx context.Context, q string, args ...any) ([]requests.Request, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]requests.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanRequest(s scanner) (requests.Request, error) {
	var (
		req    requests.Request
		estado string
	)
	if err := s.Scan(&req.ID, &req.UsuarioID, &req.AnimalID, &req.Observaciones, &estado, &req.Activo, &req.FechaSolicitud); err != nil {
		return requests.Request{}, err
	}
	req.Estado = requests.Estado(estado)
	return req, nil
}
