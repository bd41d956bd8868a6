package users

import (
	"errors"
	"net/http"
	"strings"

	"pet-adoption-shelter/internal/middleware"
	"pet-adoption-shelter/internal/platform/respond"
	"pet-adoption-shelter/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Usuarios responde con {error} / {message} en lugar del envelope {success,...}.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/usuarios", func(ur chi.Router) {
		// Registro público
		ur.Post("/register", registerHandler(svc))

		ur.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAnyRole(auth.RoleAdmin))

			ar.Get("/", listUsersHandler(svc))
			ar.Post("/", createUserHandler(svc))
			ar.Get("/{id}", getUserHandler(svc))
			ar.Put("/{id}", updateUserHandler(svc))
			ar.Patch("/{id}/password", changePasswordHandler(svc))
			ar.Delete("/{id}", deactivateUserHandler(svc))
		})
	})
}

type createUserRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Correo    string `json:"correo" validate:"required,email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Rol       string `json:"rol" validate:"omitempty,oneof=ADMIN VOLUNTARIO ADOPTANTE VISITANTE"`
	Password  string `json:"password"`
	// Nombre de campo histórico: trae la contraseña en texto plano.
	PasswordLegacy string `json:"password_hash"`
}

func (req createUserRequest) toInput() CreateInput {
	pw := req.Password
	if strings.TrimSpace(pw) == "" {
		pw = req.PasswordLegacy
	}
	return CreateInput{
		Nombre:    req.Nombre,
		Correo:    req.Correo,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Rol:       req.Rol,
		Password:  pw,
	}
}

type updateUserRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Correo    string `json:"correo" validate:"required,email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Rol       string `json:"rol" validate:"omitempty,oneof=ADMIN VOLUNTARIO ADOPTANTE VISITANTE"`
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

// registerHandler godoc
// @Summary      Registrar un nuevo usuario
// @Description  Alta pública. rol admite ADOPTANTE (default) o VISITANTE.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  createUserRequest  true  "Usuario"
// @Success      201  {object}  respond.MessageBody
// @Failure      400  {object}  respond.ErrorBody
// @Failure      403  {object}  respond.ErrorBody
// @Failure      409  {object}  respond.ErrorBody
// @Router       /usuarios/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}

		u, err := svc.Register(r.Context(), req.toInput())
		if err != nil {
			writeServiceError(w, r, err, "Error al crear el usuario")
			return
		}
		respond.JSON(w, r, http.StatusCreated, respond.MessageBody{Message: "Usuario creado correctamente", Usuario: u})
	}
}

func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}

		u, err := svc.CreateByAdmin(r.Context(), req.toInput())
		if err != nil {
			writeServiceError(w, r, err, "Error al crear el usuario")
			return
		}
		respond.JSON(w, r, http.StatusCreated, respond.MessageBody{Message: "Usuario creado correctamente", Usuario: u})
	}
}

// listUsersHandler godoc
// @Summary      Listar usuarios activos
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   User
// @Failure      500  {object}  respond.ErrorBody
// @Router       /usuarios [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener los usuarios")
			return
		}
		respond.JSON(w, r, http.StatusOK, items)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Error(w, r, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		u, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener el usuario")
			return
		}
		respond.JSON(w, r, http.StatusOK, u)
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Error(w, r, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		var req updateUserRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}

		_, err := svc.Update(r.Context(), id, UpdateInput{
			Nombre:    req.Nombre,
			Correo:    req.Correo,
			Telefono:  req.Telefono,
			Direccion: req.Direccion,
			Rol:       req.Rol,
		})
		if err != nil {
			writeServiceError(w, r, err, "Error al actualizar el usuario")
			return
		}
		respond.JSON(w, r, http.StatusOK, respond.MessageBody{Message: "Usuario actualizado exitosamente"})
	}
}

// changePasswordHandler godoc
// @Summary      Cambiar la contraseña de un usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                    true  "ID del usuario"
// @Param        body  body  changePasswordRequest  true  "Nueva contraseña"
// @Success      200  {object}  respond.MessageBody
// @Failure      400  {object}  respond.ErrorBody
// @Router       /usuarios/{id}/password [patch]
func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Error(w, r, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		var req changePasswordRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, respond.BadRequestMessage(err))
			return
		}

		if err := svc.ChangePassword(r.Context(), id, req.Password); err != nil {
			writeServiceError(w, r, err, "Error al cambiar la contraseña")
			return
		}
		respond.JSON(w, r, http.StatusOK, respond.MessageBody{Message: "Contraseña actualizada exitosamente"})
	}
}

func deactivateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r, "id")
		if !ok {
			respond.Error(w, r, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		if err := svc.Deactivate(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Error al eliminar el usuario")
			return
		}
		respond.JSON(w, r, http.StatusOK, respond.MessageBody{Message: "Usuario eliminado exitosamente"})
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPasswordRequired):
		respond.Error(w, r, http.StatusBadRequest, "La contraseña es requerida")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, r, http.StatusBadRequest, "Datos incompletos o inválidos")
	case errors.Is(err, ErrRoleNotAllowed):
		respond.Error(w, r, http.StatusForbidden, "Rol no permitido para registro público")
	case errors.Is(err, ErrDuplicateEmail):
		respond.Error(w, r, http.StatusConflict, "El correo ya está registrado")
	case errors.Is(err, ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "Usuario no encontrado")
	default:
		middleware.LoggerFrom(r.Context()).Error(fallback, map[string]any{"error": err.Error()})
		respond.Error(w, r, http.StatusInternalServerError, fallback)
	}
}
