package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autogestion/internal/application/access"
	"github.com/jhoicas/autogestion/internal/application/notify"
	"github.com/jhoicas/autogestion/internal/application/session"
	"github.com/jhoicas/autogestion/internal/application/validation"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

//go:embed templates
var templateFS embed.FS

// navItem entrada del menú lateral.
type navItem struct {
	Title   string
	Href    string
	Roles   []string
	Active  bool
	Spinner bool
}

// menu entradas del menú; las que llevan roles pasan por el gate de fragmento.
var menu = []navItem{
	{Title: "Dashboard", Href: "/dashboard"},
	{Title: "Vehículos", Href: "/dashboard/vehiculos"},
	{Title: "Clientes", Href: "/dashboard/clientes"},
	{Title: "Proveedores", Href: "/dashboard/proveedores"},
	{Title: "Usuarios", Href: "/dashboard/usuarios", Roles: []string{RoleAdmin}},
	{Title: "Empleados", Href: "/dashboard/empleados", Roles: []string{RoleAdmin}},
}

// sidebar aplica el gate de fragmento a cada entrada.
func sidebar(st session.State, current string) []navItem {
	out := make([]navItem, 0, len(menu))
	for _, it := range menu {
		switch access.Fragment(st, it.Roles...) {
		case access.Fallback:
			continue
		case access.Spinner:
			it.Spinner = true
		}
		it.Active = it.Href == current
		out = append(out, it)
	}
	return out
}

// view datos comunes a todas las páginas.
type view struct {
	AppName string
	Title   string
	Session session.State
	Nav     []navItem
	Flash   []notify.Message
	Data    any
}

// formView estado de un formulario (el "diálogo" del panel).
type formView struct {
	Open   bool
	Action string
	Values map[string]string
	Errors validation.Errors
	Error  string
}

// Value valor enviado o precargado del campo.
func (f formView) Value(field string) string {
	return f.Values[field]
}

// FieldError mensaje de validación del campo.
func (f formView) FieldError(field string) string {
	return f.Errors[field]
}

var funcs = template.FuncMap{
	"fecha": func(f entity.Fecha) string { return f.Corta() },
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"join":  strings.Join,
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"selected": func(current string, id entity.ID) bool { return current == id.String() },
}

// renderer páginas html/template embebidas; cada página se combina con el layout.
type renderer struct {
	appName string
	pages   map[string]*template.Template
}

func newRenderer(appName string) (*renderer, error) {
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	r := &renderer{appName: appName, pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", f)
		if err != nil {
			return nil, fmt.Errorf("plantilla %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return r, nil
}

// render ejecuta la página y vacía la cola de avisos del espacio de trabajo.
func (r *renderer) render(c *fiber.Ctx, status int, page, title string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("plantilla desconocida: %s", page)
	}
	v := view{AppName: r.appName, Title: title, Data: data}
	if w := GetWorkspace(c); w != nil {
		v.Session = w.Session.Snapshot()
		v.Nav = sidebar(v.Session, c.Path())
		v.Flash = w.Flash.Drain()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

