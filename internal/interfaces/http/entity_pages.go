package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autogestion/internal/application/store"
	"github.com/jhoicas/autogestion/internal/application/validation"
	"github.com/jhoicas/autogestion/internal/application/workspace"
	"github.com/jhoicas/autogestion/internal/domain"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// entityPage describe una página de listado con su formulario de alta/edición.
type entityPage[E any] struct {
	page  string
	title string
	base  string
	roles []string

	coll func(*workspace.Workspace) *store.Collection[E]
	key  func(E) entity.ID
	// prepare carga los catálogos que necesitan los selectores del formulario.
	prepare func(ctx context.Context, w *workspace.Workspace, form formView)
	// values precarga el formulario de edición.
	values func(E) map[string]string
	// extra datos propios de la página.
	extra func(entityData[E]) any
}

// entityData datos de la plantilla de una página de entidad.
type entityData[E any] struct {
	Base    string
	State   store.State[E]
	Catalog store.CatalogState
	Form    formView
	Detail  *E
	// CanUpdate y CanGet según las rutas que ofrece el backend.
	CanUpdate bool
	CanGet    bool
	Extra     any
}

// normalizer formularios de modificación parcial.
type normalizer interface{ Normalize() }

// defaulter formularios con valores por defecto.
type defaulter interface{ ApplyDefaults() }

func (p entityPage[E]) data(ctx context.Context, w *workspace.Workspace, form formView) entityData[E] {
	coll := p.coll(w)
	if p.prepare != nil {
		p.prepare(ctx, w, form)
	}
	d := entityData[E]{
		Base:      p.base,
		State:     coll.Snapshot(),
		Catalog:   w.Catalog.Snapshot(),
		Form:      form,
		CanUpdate: coll.Supports(store.OpUpdate),
		CanGet:    coll.Supports(store.OpGet),
	}
	if p.extra != nil {
		d.Extra = p.extra(d)
	}
	return d
}

// find busca en la colección cacheada.
func (p entityPage[E]) find(w *workspace.Workspace, id string) (E, bool) {
	for _, it := range p.coll(w).Snapshot().Items {
		if p.key(it).String() == id {
			return it, true
		}
	}
	var zero E
	return zero, false
}

// listPage GET base. ?nuevo abre el formulario vacío, ?editar=<id> lo precarga
// y ?ver=<id> consulta el registro al backend.
func listPage[E any](h *PagesHandler, p entityPage[E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w := GetWorkspace(c)
		ctx := c.UserContext()
		coll := p.coll(w)
		coll.List(ctx)

		form := formView{Action: p.base}
		var detail *E
		if c.Query("nuevo") != "" {
			form.Open = true
		}
		if id := c.Query("editar"); id != "" && coll.Supports(store.OpUpdate) {
			item, ok := p.editable(ctx, w, id)
			if ok {
				form = formView{Open: true, Action: p.base + "/" + id, Values: p.values(item)}
			}
		}
		if id := c.Query("ver"); id != "" && coll.Supports(store.OpGet) {
			if item, ok := coll.GetByID(ctx, entity.ID(id)); ok {
				detail = &item
			}
		}

		d := p.data(ctx, w, form)
		// Cualquiera de las lecturas anteriores pudo recibir un 401.
		if done, err := collapsed(c, p.roles, p.base); done {
			return err
		}
		d.Detail = detail
		return h.r.render(c, fiber.StatusOK, p.page, p.title, d)
	}
}

// editable registro a editar: por id en el backend si existe esa ruta, si no desde el listado.
func (p entityPage[E]) editable(ctx context.Context, w *workspace.Workspace, id string) (E, bool) {
	coll := p.coll(w)
	if coll.Supports(store.OpGet) {
		return coll.GetByID(ctx, entity.ID(id))
	}
	return p.find(w, id)
}

// createForm POST base.
func createForm[E any, R any](h *PagesHandler, p entityPage[E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return submit[E, R](h, p, c, p.base, func(ctx context.Context, w *workspace.Workspace, in *R) error {
			return p.coll(w).Create(ctx, in)
		})
	}
}

// updateForm POST base/:id.
func updateForm[E any, R any](h *PagesHandler, p entityPage[E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		return submit[E, R](h, p, c, p.base+"/"+id, func(ctx context.Context, w *workspace.Workspace, in *R) error {
			return p.coll(w).Update(ctx, entity.ID(id), in)
		})
	}
}

// deleteForm POST base/:id/delete.
func deleteForm[E any](h *PagesHandler, p entityPage[E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w := GetWorkspace(c)
		ctx := c.UserContext()
		if err := p.coll(w).Delete(ctx, entity.ID(c.Params("id"))); err != nil {
			if done, rerr := collapsed(c, p.roles, p.base); done {
				return rerr
			}
			// El aviso ya está en la cola; el listado se muestra con el error.
			d := p.data(ctx, w, formView{Action: p.base})
			return h.r.render(c, fiber.StatusUnprocessableEntity, p.page, p.title, d)
		}
		return c.Redirect(p.base, fiber.StatusSeeOther)
	}
}

// submit valida el formulario antes de tocar el backend y, si la mutación falla,
// vuelve a mostrarlo abierto con el error.
func submit[E any, R any](h *PagesHandler, p entityPage[E], c *fiber.Ctx, action string,
	mutate func(context.Context, *workspace.Workspace, *R) error) error {
	w := GetWorkspace(c)
	ctx := c.UserContext()
	values := postedValues(c)
	form := formView{Open: true, Action: action, Values: values}

	dropEmptyFields(c)
	in := new(R)
	if err := c.BodyParser(in); err != nil {
		form.Error = "Formulario inválido"
		return h.r.render(c, fiber.StatusBadRequest, p.page, p.title, p.data(ctx, w, form))
	}
	if n, ok := any(in).(normalizer); ok {
		n.Normalize()
	}
	if d, ok := any(in).(defaulter); ok {
		d.ApplyDefaults()
	}
	if err := validation.Validate(in); err != nil {
		form.Errors = asErrors(err)
		return h.r.render(c, fiber.StatusUnprocessableEntity, p.page, p.title, p.data(ctx, w, form))
	}

	if err := mutate(ctx, w, in); err != nil {
		if errors.Is(err, domain.ErrUnsupported) {
			return fiber.ErrMethodNotAllowed
		}
		if done, rerr := collapsed(c, p.roles, p.base); done {
			return rerr
		}
		form.Error = p.coll(w).Snapshot().Error
		return h.r.render(c, fiber.StatusUnprocessableEntity, p.page, p.title, p.data(ctx, w, form))
	}
	return c.Redirect(p.base, fiber.StatusSeeOther)
}
