package http

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autogestion/internal/application/access"
	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/application/session"
	"github.com/jhoicas/autogestion/internal/application/workspace"
)

// Locals keys para el espacio de trabajo y la foto de sesión en Fiber.
const (
	LocalWorkspace = "workspace"
	LocalSession   = "session"
)

// WorkspaceCookie cookie propia del panel con el id del espacio de trabajo.
// No es la cookie de sesión del backend: esa vive en el cookiejar del espacio.
const WorkspaceCookie = "ag_ws"

// RoleAdmin rol requerido para las secciones de administración.
const RoleAdmin = "ROLE_ADMIN"

// loadingRetry segundos tras los que el placeholder de carga vuelve a pedir la página.
const loadingRetry = 1

// WorkspaceMiddleware resuelve el espacio de trabajo del navegador desde la cookie ag_ws,
// o crea uno nuevo (que arranca verificando la sesión) y fija la cookie.
func WorkspaceMiddleware(reg *workspace.Registry, ttl time.Duration, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if w, ok := reg.Get(c.Cookies(WorkspaceCookie)); ok {
			c.Locals(LocalWorkspace, w)
			return c.Next()
		}
		w, err := reg.Create()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "WORKSPACE", Message: "no se pudo iniciar el espacio de trabajo"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     WorkspaceCookie,
			Value:    w.ID,
			Path:     "/",
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
			MaxAge:   int(ttl.Seconds()),
		})
		c.Locals(LocalWorkspace, w)
		return c.Next()
	}
}

// GetWorkspace devuelve el espacio de trabajo del contexto (después de WorkspaceMiddleware).
func GetWorkspace(c *fiber.Ctx) *workspace.Workspace {
	w, _ := c.Locals(LocalWorkspace).(*workspace.Workspace)
	return w
}

// GetSession devuelve la foto de sesión con la que se autorizó la petición (después de RequireSession).
func GetSession(c *fiber.Ctx) session.State {
	st, _ := c.Locals(LocalSession).(session.State)
	return st
}

// RequireSession gate de subárbol de rutas:
//   - sesión verificándose → placeholder 200 con Refresh, sin redirección.
//   - sin sesión → 302 a /login?from=<ruta original>.
//   - sin alguno de los roles → 302 a /forbidden.
//
// Con sesión activa refresca la identidad antes de decidir, una vez por petición aunque
// haya gates anidados. Si el backend la revoca, el listener de la sesión la colapsa
// y la evaluación siguiente redirige a login.
func (h *PagesHandler) RequireSession(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w := GetWorkspace(c)
		if w == nil {
			return fiber.ErrInternalServerError
		}

		st := w.Session.Snapshot()
		_, refreshed := c.Locals(LocalSession).(session.State)
		if !refreshed && !st.IsLoading && st.IsAuthenticated {
			w.Session.Refresh(c.UserContext())
			st = w.Session.Snapshot()
		}

		switch access.Tree(st, roles...) {
		case access.Loading:
			c.Set(fiber.HeaderCacheControl, "no-store")
			c.Set("Refresh", strconv.Itoa(loadingRetry))
			return h.r.render(c, fiber.StatusOK, "loading", "Cargando", nil)
		case access.RedirectLogin:
			return c.Redirect(loginURL(c.OriginalURL()), fiber.StatusFound)
		case access.RedirectForbidden:
			return c.Redirect("/forbidden", fiber.StatusFound)
		}

		c.Locals(LocalSession, st)
		return c.Next()
	}
}

// loginURL /login con la ubicación original preservada.
func loginURL(from string) string {
	if from == "" || from == "/" {
		return "/login"
	}
	return "/login?from=" + url.QueryEscape(from)
}

// safeFrom acepta solo rutas locales como destino tras el login.
func safeFrom(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return "/dashboard"
	}
	return from
}
