package history

import (
	"errors"
	"net/http"

	"pet-adoption-shelter/internal/middleware"
	"pet-adoption-shelter/internal/platform/respond"
	"pet-adoption-shelter/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/historial", func(hr chi.Router) {
		hr.Use(middleware.RequireAnyRole(auth.RoleAdmin, auth.RoleVoluntario))

		hr.Get("/", listHistoryHandler(svc))
		hr.Post("/", createHistoryHandler(svc))
		hr.Get("/animal/{id}", listByAnimalHandler(svc))
		hr.Get("/{id}", getHistoryHandler(svc))
		hr.Put("/{id}", updateHistoryHandler(svc))
		hr.Delete("/{id}", deleteHistoryHandler(svc))
	})
}

type historyRequest struct {
	AnimalID    int64  `json:"animal_id" validate:"required,gt=0"`
	Fecha       string `json:"fecha" validate:"required"`
	Diagnostico string `json:"diagnostico" validate:"required"`
	Tratamiento string `json:"tratamiento"`
	Veterinario string `json:"veterinario"`
	Notas       string `json:"notas"`
}

func decodeInput(r *http.Request) (Input, string, bool) {
	var req historyRequest
	if err := respond.Decode(r, &req); err != nil {
		return Input{}, respond.BadRequestMessage(err), false
	}
	fecha, err := respond.ParseDate(req.Fecha)
	if err != nil || fecha == nil {
		return Input{}, "fecha debe ser YYYY-MM-DD", false
	}
	return Input{
		AnimalID:    req.AnimalID,
		Fecha:       fecha,
		Diagnostico: req.Diagnostico,
		Tratamiento: req.Tratamiento,
		Veterinario: req.Veterinario,
		Notas:       req.Notas,
	}, "", true
}

// listHistoryHandler godoc
// @Summary      Listar historial médico
// @Tags         historial
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  respond.Envelope
// @Router       /historial [get]
func listHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener historial")
			return
		}
		respond.OK(w, r, http.StatusOK, "", items)
	}
}

func listByAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusBadRequest, "id de animal inválido")
			return
		}
		items, err := svc.ListByAnimal(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener historial del animal")
			return
		}
		respond.OK(w, r, http.StatusOK, "", items)
	}
}

func getHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Historial no encontrado")
			return
		}
		e, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener historial")
			return
		}
		respond.OK(w, r, http.StatusOK, "", e)
	}
}

func createHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, msg, ok := decodeInput(r)
		if !ok {
			respond.Fail(w, r, http.StatusBadRequest, msg)
			return
		}
		e, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, "Error al crear historial")
			return
		}
		respond.OK(w, r, http.StatusCreated, "Historial creado", e)
	}
}

func updateHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Historial no encontrado")
			return
		}
		in, msg, ok := decodeInput(r)
		if !ok {
			respond.Fail(w, r, http.StatusBadRequest, msg)
			return
		}
		e, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, r, err, "Error al actualizar historial")
			return
		}
		respond.OK(w, r, http.StatusOK, "Historial actualizado", e)
	}
}

func deleteHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Historial no encontrado")
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Error al eliminar historial")
			return
		}
		respond.OK(w, r, http.StatusOK, "Historial eliminado", nil)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrAnimalNotFound):
		respond.Fail(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Fail(w, r, http.StatusNotFound, "Historial no encontrado")
	default:
		middleware.LoggerFrom(r.Context()).Error(fallback, map[string]any{"error": err.Error()})
		respond.Fail(w, r, http.StatusInternalServerError, fallback)
	}
}
