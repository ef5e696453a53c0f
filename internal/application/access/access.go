package access

import "github.com/jhoicas/autogestion/internal/application/session"

// Decision resultado de evaluar un gate sobre el estado de sesión.
type Decision int

const (
	// Render muestra el contenido protegido.
	Render Decision = iota
	// Loading la sesión aún se está verificando: placeholder neutro, sin redirección.
	Loading
	// RedirectLogin no hay sesión: ir a login preservando la ubicación pedida.
	RedirectLogin
	// RedirectForbidden hay sesión pero falta el rol requerido.
	RedirectForbidden
	// Spinner indicador en línea mientras se verifica la sesión (solo fragmentos).
	Spinner
	// Fallback contenido alternativo del fragmento; por defecto nada.
	Fallback
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case Loading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	case RedirectForbidden:
		return "redirect-forbidden"
	case Spinner:
		return "spinner"
	case Fallback:
		return "fallback"
	}
	return "unknown"
}

// Tree decide para un subárbol de rutas. Sin roles requeridos basta con estar autenticado.
func Tree(st session.State, required ...string) Decision {
	if st.IsLoading {
		return Loading
	}
	if !st.IsAuthenticated || st.Identity == nil {
		return RedirectLogin
	}
	if len(required) > 0 && !st.HasRole(required...) {
		return RedirectForbidden
	}
	return Render
}

// Fragment decide para un fragmento de página (p. ej. una entrada del menú). Nunca redirige.
func Fragment(st session.State, required ...string) Decision {
	if st.IsLoading {
		return Spinner
	}
	if len(required) > 0 && !st.HasRole(required...) {
		return Fallback
	}
	return Render
}
