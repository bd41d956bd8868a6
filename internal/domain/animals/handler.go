package animals

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

	r.Route("/animales", func(ar chi.Router) {
		// Catálogo público
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{id}", getAnimalHandler(svc))

		ar.With(staff).Post("/", createAnimalHandler(svc))
		ar.With(staff).Put("/{id}", updateAnimalHandler(svc))
		ar.With(staff).Delete("/{id}", deactivateAnimalHandler(svc))
	})
}

type animalRequest struct {
	Nombre       string `json:"nombre" validate:"required"`
	Especie      string `json:"especie" validate:"required"`
	Raza         string `json:"raza"`
	Edad         *int   `json:"edad" validate:"omitempty,gte=0"`
	Sexo         string `json:"sexo"`
	Descripcion  string `json:"descripcion"`
	Estado       string `json:"estado" validate:"omitempty,oneof=DISPONIBLE ADOPTADO EN_CUARENTENA RESERVADO"`
	FotoURL      string `json:"foto_url"`
	FechaIngreso string `json:"fecha_ingreso"` // YYYY-MM-DD opcional
}

func (req animalRequest) toInput() (Input, error) {
	fecha, err := respond.ParseDate(req.FechaIngreso)
	if err != nil {
		return Input{}, ErrInvalidInput
	}
	return Input{
		Nombre:       req.Nombre,
		Especie:      req.Especie,
		Raza:         req.Raza,
		Edad:         req.Edad,
		Sexo:         req.Sexo,
		Descripcion:  req.Descripcion,
		Estado:       Estado(req.Estado),
		FotoURL:      req.FotoURL,
		FechaIngreso: fecha,
	}, nil
}

// listAnimalsHandler godoc
// @Summary      Listar animales activos
// @Tags         animales
// @Produce      json
// @Param        estado  query  string  false  "Filtro por estado"
// @Success      200  {object}  respond.Envelope
// @Router       /animales [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), Estado(r.URL.Query().Get("estado")))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Fail(w, r, http.StatusBadRequest, "Estado de animal inválido")
				return
			}
			middleware.LoggerFrom(r.Context()).Error("listar animales", map[string]any{"error": err.Error()})
			respond.Fail(w, r, http.StatusInternalServerError, "Error al obtener animales")
			return
		}
		respond.OK(w, r, http.StatusOK, "", items)
	}
}

// getAnimalHandler godoc
// @Summary      Obtener animal por id
// @Tags         animales
// @Produce      json
// @Param        id   path  int  true  "ID del animal"
// @Success      200  {object}  respond.Envelope
// @Failure      404  {object}  respond.Envelope
// @Router       /animales/{id} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Animal no encontrado")
			return
		}

		a, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener animal")
			return
		}
		respond.OK(w, r, http.StatusOK, "", a)
	}
}

// createAnimalHandler godoc
// @Summary      Registrar animal
// @Tags         animales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  animalRequest  true  "Animal"
// @Success      201  {object}  respond.Envelope
// @Failure      400  {object}  respond.Envelope
// @Router       /animales [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Fail(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}
		in, err := req.toInput()
		if err != nil {
			respond.Fail(w, r, http.StatusBadRequest, "fecha_ingreso debe ser YYYY-MM-DD")
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, "Error al crear animal")
			return
		}
		respond.OK(w, r, http.StatusCreated, "Animal creado", a)
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Animal no encontrado")
			return
		}

		var req animalRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Fail(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}
		in, err := req.toInput()
		if err != nil {
			respond.Fail(w, r, http.StatusBadRequest, "fecha_ingreso debe ser YYYY-MM-DD")
			return
		}

		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, r, err, "Error al actualizar animal")
			return
		}
		respond.OK(w, r, http.StatusOK, "Animal actualizado", a)
	}
}

func deactivateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Fail(w, r, http.StatusNotFound, "Animal no encontrado")
			return
		}

		if err := svc.Deactivate(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Error al desactivar animal")
			return
		}
		respond.OK(w, r, http.StatusOK, "Animal desactivado", nil)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Fail(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Fail(w, r, http.StatusNotFound, "Animal no encontrado")
	default:
		middleware.LoggerFrom(r.Context()).Error(fallback, map[string]any{"error": err.Error()})
		respond.Fail(w, r, http.StatusInternalServerError, fallback)
	}
}
