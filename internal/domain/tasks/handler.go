package tasks

import (
	"errors"
	"net/http"

	"pet-adoption-shelter/internal/middleware"
	"pet-adoption-shelter/internal/platform/respond"
	"pet-adoption-shelter/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/tareas", func(tr chi.Router) {
		tr.Use(middleware.RequireAnyRole(auth.RoleAdmin, auth.RoleVoluntario))

		tr.Get("/", listTasksHandler(svc))
		tr.Get("/voluntario/{id}", listByVolunteerHandler(svc))
		tr.Get("/{id}", getTaskHandler(svc))

		// Sólo ADMIN gestiona tareas
		tr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAnyRole(auth.RoleAdmin))
			ar.Post("/", createTaskHandler(svc))
			ar.Put("/{id}", updateTaskHandler(svc))
			ar.Delete("/{id}", deleteTaskHandler(svc))
		})
	})
}

type taskRequest struct {
	Titulo       string `json:"titulo" validate:"required"`
	Descripcion  string `json:"descripcion"`
	Estado       string `json:"estado"`
	Prioridad    string `json:"prioridad"`
	FechaLimite  string `json:"fecha_limite"`
	VoluntarioID *int64 `json:"id_voluntario" validate:"omitempty,gt=0"`
}

func decodeInput(r *http.Request) (Input, string, bool) {
	var req taskRequest
	if err := respond.Decode(r, &req); err != nil {
		return Input{}, respond.BadRequestMessage(err), false
	}
	limite, err := respond.ParseDate(req.FechaLimite)
	if err != nil {
		return Input{}, "fecha_limite debe ser YYYY-MM-DD", false
	}
	return Input{
		Titulo:       req.Titulo,
		Descripcion:  req.Descripcion,
		Estado:       req.Estado,
		Prioridad:    req.Prioridad,
		FechaLimite:  limite,
		VoluntarioID: req.VoluntarioID,
	}, "", true
}

// listTasksHandler godoc
// @Summary      Listar tareas de voluntariado
// @Tags         tareas
// @Produce      json
// @Security     BearerAuth
// @Param        estado  query  string  false  "Filtro por estado"
// @Success      200  {object}  respond.Envelope
// @Router       /tareas [get]
func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("estado"))
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener tareas")
			return
		}
		respond.OK(w, r, http.StatusOK, "", items)
	}
}

func listByVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusBadRequest, "id de voluntario inválido")
			return
		}
		items, err := svc.ListByVolunteer(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener tareas del voluntario")
			return
		}
		respond.OK(w, r, http.StatusOK, "", items)
	}
}

func getTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Tarea no encontrada")
			return
		}
		t, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener la tarea")
			return
		}
		respond.OK(w, r, http.StatusOK, "", t)
	}
}

func createTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, msg, ok := decodeInput(r)
		if !ok {
			respond.Fail(w, r, http.StatusBadRequest, msg)
			return
		}
		t, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, "Error al crear la tarea")
			return
		}
		respond.OK(w, r, http.StatusCreated, "Tarea creada", t)
	}
}

func updateTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Tarea no encontrada")
			return
		}
		in, msg, ok := decodeInput(r)
		if !ok {
			respond.Fail(w, r, http.StatusBadRequest, msg)
			return
		}
		t, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, r, err, "Error al actualizar la tarea")
			return
		}
		respond.OK(w, r, http.StatusOK, "Tarea actualizada", t)
	}
}

func deleteTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Tarea no encontrada")
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Error al eliminar la tarea")
			return
		}
		respond.OK(w, r, http.StatusOK, "Tarea eliminada", nil)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Fail(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Fail(w, r, http.StatusNotFound, "Tarea no encontrada")
	default:
		middleware.LoggerFrom(r.Context()).Error(fallback, map[string]any{"error": err.Error()})
		respond.Fail(w, r, http.StatusInternalServerError, fallback)
	}
}
