package apiclient

import (
	"fmt"
	"net/http"

	"github.com/jhoicas/autogestion/internal/domain"
)

// APIError respuesta no 2xx del backend.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string // {message} del backend, puede venir vacío
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s %s: HTTP %d", e.Method, e.Path, e.Status)
}

// StatusCode status HTTP de la respuesta.
func (e *APIError) StatusCode() int { return e.Status }

// ServerMessage mensaje {message} del backend.
func (e *APIError) ServerMessage() string { return e.Message }

// Unwrap traduce el status a los errores de dominio para poder usar errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return domain.ErrInvalidInput
	}
	return nil
}
