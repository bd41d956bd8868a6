package requests

import (
	"errors"
	"net/http"

	"pet-adoption-shelter/internal/middleware"
	"pet-adoption-shelter/internal/platform/respond"
	"pet-adoption-shelter/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	staff := middleware.RequireAnyRole(auth.RoleAdmin, auth.RoleVoluntario)

	r.Route("/solicitudes", func(sr chi.Router) {
		// "/mias" antes que "/{id}"
		sr.With(middleware.RequireAuth).Get("/mias", listMineHandler(svc))

		sr.With(staff).Get("/", listRequestsHandler(svc))
		sr.With(staff).Get("/{id}", getRequestHandler(svc))
		sr.With(middleware.RequireAnyRole(auth.RoleAdmin, auth.RoleVoluntario, auth.RoleAdoptante)).
			Post("/", createRequestHandler(svc))
		sr.With(staff).Put("/{id}", updateRequestHandler(svc))
		sr.With(middleware.RequireAnyRole(auth.RoleAdmin)).Delete("/{id}", deactivateRequestHandler(svc))
	})
}

type createRequest struct {
	AnimalID      int64  `json:"id_animal" validate:"required,gt=0"`
	Observaciones string `json:"observaciones"`
}

type updateRequest struct {
	Estado        string  `json:"estado" validate:"required"`
	Observaciones *string `json:"observaciones"`
}

// createRequestHandler godoc
// @Summary      Crear solicitud de adopción
// @Description  El solicitante se toma del token. El animal debe estar DISPONIBLE y activo.
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createRequest  true  "Solicitud"
// @Success      201  {object}  respond.Envelope
// @Failure      400  {object}  respond.Envelope
// @Router       /solicitudes [post]
func createRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Fail(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}

		out, err := svc.Create(r.Context(), claims.UserID, req.AnimalID, req.Observaciones)
		if err != nil {
			writeServiceError(w, r, err, "Error al crear solicitud")
			return
		}

		middleware.LoggerFrom(r.Context()).Info("solicitud creada", map[string]any{
			"id_solicitud": out.ID,
			"id_usuario":   out.UsuarioID,
			"id_animal":    out.AnimalID,
		})
		respond.OK(w, r, http.StatusCreated, "Solicitud creada", out)
	}
}

// listMineHandler godoc
// @Summary      Mis solicitudes
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  respond.Envelope
// @Router       /solicitudes/mias [get]
func listMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener mis solicitudes")
			return
		}
		respond.OK(w, r, http.StatusOK, "", items)
	}
}

func listRequestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), Estado(r.URL.Query().Get("estado")))
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener solicitudes")
			return
		}
		respond.OK(w, r, http.StatusOK, "", items)
	}
}

func getRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Solicitud no encontrada")
			return
		}
		out, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener solicitud")
			return
		}
		respond.OK(w, r, http.StatusOK, "", out)
	}
}

// updateRequestHandler godoc
// @Summary      Actualizar estado de solicitud
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int            true  "ID de la solicitud"
// @Param        body  body  updateRequest  true  "Nuevo estado"
// @Success      200  {object}  respond.Envelope
// @Failure      400  {object}  respond.Envelope
// @Failure      404  {object}  respond.Envelope
// @Router       /solicitudes/{id} [put]
func updateRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Solicitud no encontrada")
			return
		}

		var req updateRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Fail(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}

		out, err := svc.Update(r.Context(), id, Estado(req.Estado), req.Observaciones)
		if err != nil {
			writeServiceError(w, r, err, "Error al actualizar solicitud")
			return
		}
		respond.OK(w, r, http.StatusOK, "Solicitud actualizada", out)
	}
}

func deactivateRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Solicitud no encontrada")
			return
		}
		if err := svc.Deactivate(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Error al desactivar solicitud")
			return
		}
		respond.OK(w, r, http.StatusOK, "Solicitud desactivada", nil)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrAnimalNotAvailable),
		errors.Is(err, ErrInvalidEstado),
		errors.Is(err, ErrInvalidTransition):
		respond.Fail(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Fail(w, r, http.StatusNotFound, "Solicitud no encontrada")
	default:
		middleware.LoggerFrom(r.Context()).Error(fallback, map[string]any{"error": err.Error()})
		respond.Fail(w, r, http.StatusInternalServerError, fallback)
	}
}
