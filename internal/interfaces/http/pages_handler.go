package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autogestion/internal/application/access"
	"github.com/jhoicas/autogestion/internal/application/validation"
	"github.com/jhoicas/autogestion/internal/infrastructure/pdf"
	"github.com/jhoicas/autogestion/pkg/logger"
)

// PagesHandler páginas HTML del panel. Todo el estado vive en el espacio de trabajo
// del navegador; el handler solo traduce formularios en operaciones y estados en páginas.
type PagesHandler struct {
	r      *renderer
	pdf    *pdf.MarotoGenerator
	dealer string
	log    *logger.Logger
}

// NewPagesHandler construye el handler y compila las plantillas.
func NewPagesHandler(appName string, gen *pdf.MarotoGenerator, log *logger.Logger) (*PagesHandler, error) {
	if log == nil {
		log = logger.Nop()
	}
	r, err := newRenderer(appName)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		gen = pdf.NewMarotoGenerator()
	}
	return &PagesHandler{r: r, pdf: gen, dealer: appName, log: log.Named("http")}, nil
}

// Forbidden GET /forbidden
func (h *PagesHandler) Forbidden(c *fiber.Ctx) error {
	return h.r.render(c, fiber.StatusForbidden, "forbidden", "Acceso denegado", nil)
}

// Dashboard GET /dashboard
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	return h.r.render(c, fiber.StatusOK, "dashboard", "Dashboard", GetSession(c))
}

// SessionJSON GET /api/session: foto de la sesión del espacio de trabajo.
func (h *PagesHandler) SessionJSON(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	if w == nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(w.Session.Snapshot())
}

// Health GET /health
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// collapsed indica si la sesión se perdió durante la petición (un 401 en una lectura
// o en una mutación). En ese caso responde la redirección que correspondería al gate
// del subárbol. Un POST no se puede repetir con GET, así que vuelve al listado base.
func collapsed(c *fiber.Ctx, roles []string, base string) (bool, error) {
	w := GetWorkspace(c)
	if w == nil {
		return false, nil
	}
	switch access.Tree(w.Session.Snapshot(), roles...) {
	case access.RedirectLogin:
		from := c.OriginalURL()
		if c.Method() != fiber.MethodGet {
			from = base
		}
		return true, c.Redirect(loginURL(from), fiber.StatusFound)
	case access.RedirectForbidden:
		return true, c.Redirect("/forbidden", fiber.StatusFound)
	}
	return false, nil
}

// asErrors errores por campo; otro tipo de error queda bajo "_errors".
func asErrors(err error) validation.Errors {
	if v, ok := err.(validation.Errors); ok {
		return v
	}
	return validation.Errors{"_errors": err.Error()}
}

// postedValues valores del formulario enviado, para volver a mostrarlo tal cual.
func postedValues(c *fiber.Ctx) map[string]string {
	out := map[string]string{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		out[string(k)] = string(v)
	})
	return out
}

// dropEmptyFields quita los campos vacíos: en un formulario HTML "vacío" es "no enviado".
func dropEmptyFields(c *fiber.Ctx) {
	args := c.Request().PostArgs()
	var empty []string
	args.VisitAll(func(k, v []byte) {
		if len(v) == 0 {
			empty = append(empty, string(k))
		}
	})
	for _, k := range empty {
		args.Del(k)
	}
}
