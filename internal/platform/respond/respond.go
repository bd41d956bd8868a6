// Package respond centraliza el armado de respuestas JSON y la validación de
// cuerpos de request. Conviven dos formas de error (legado del API):
//   - {"error": "..."}                               login y usuarios
//   - {"success": false, "message": "..."}           animales, historial, tareas, solicitudes
package respond

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Envelope es la forma {success, message, data}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody es la forma {error}.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody es la forma {message} usada por usuarios.
type MessageBody struct {
	Message string `json:"message"`
	Usuario any    `json:"usuario,omitempty"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func OK(w http.ResponseWriter, r *http.Request, status int, msg string, data any) {
	JSON(w, r, status, Envelope{Success: true, Message: msg, Data: data})
}

func Fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, Envelope{Success: false, Message: msg})
}

func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, ErrorBody{Error: msg})
}

var ErrInvalidBody = errors.New("cuerpo JSON inválido")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar errores con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Decode lee el body como JSON y lo valida según las tags `validate`.
// Devuelve ErrInvalidBody o un *ValidationError.
func Decode(r *http.Request, v any) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return Validate(v)
}

// ValidationError agrupa los campos inválidos en un mensaje legible.
type ValidationError struct {
	Fields []string
	msg    string
}

func (e *ValidationError) Error() string { return e.msg }

func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		msgs = append(msgs, fieldMessage(fe))
	}
	return &ValidationError{Fields: fields, msg: strings.Join(msgs, ", ")}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es requerido", fe.Field())
	case "email":
		return fmt.Sprintf("el campo %s debe ser un correo válido", fe.Field())
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("el campo %s debe ser >= %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("el campo %s debe tener al menos %s caracteres", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("el campo %s debe tener formato %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("el campo %s debe ser una URL", fe.Field())
	default:
		return fmt.Sprintf("el campo %s no es válido", fe.Field())
	}
}

// BadRequestMessage traduce errores de Decode a un mensaje para el cliente.
func BadRequestMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return ErrInvalidBody.Error()
}

// PathID lee un id numérico positivo de la ruta chi.
func PathID(r *http.Request, key string) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseDate acepta "YYYY-MM-DD" o RFC3339. Vacío => nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

const DateLayout = "2006-01-02"
