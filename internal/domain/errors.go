package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrUnsupported       = errors.New("operación no soportada por el backend")
	ErrMalformedEnvelope = errors.New("respuesta del backend con formato inesperado")
	ErrUnreachable       = errors.New("backend no disponible")
	ErrDetached          = errors.New("espacio de trabajo cerrado")
)
