package ports

import "context"

// Backend define el puerto de salida hacia la API REST remota (sistema de registro).
// Lo implementa *apiclient.Client; los contenedores de sesión y de entidades solo
// conocen este contrato, lo que permite instanciarlos aislados en tests.
type Backend interface {
	// Do envía body serializado como JSON (nil = sin cuerpo) y devuelve el cuerpo crudo
	// de una respuesta 2xx. Cualquier otra respuesta es un *apiclient.APIError.
	Do(ctx context.Context, method, path string, body any) ([]byte, error)
}

// AuthFailureListener recibe la señal de sesión invalidada (401/403 fuera de login/registro).
// La señal no tiene orden respecto de otras respuestas en vuelo; los receptores deben ser idempotentes.
type AuthFailureListener interface {
	OnAuthFailure(status int)
}

// Notifier mensajes transitorios para el usuario (los "toasts" del panel).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
