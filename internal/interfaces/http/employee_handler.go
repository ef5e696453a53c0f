package http

import (
	"context"
	"strconv"

	"github.com/jhoicas/autogestion/internal/application/store"
	"github.com/jhoicas/autogestion/internal/application/workspace"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// empleadosPage /dashboard/empleados (solo administradores).
var empleadosPage = entityPage[entity.Empleado]{
	page:  "empleados",
	title: "Empleados",
	base:  "/dashboard/empleados",
	roles: []string{RoleAdmin},
	coll:  func(w *workspace.Workspace) *store.Collection[entity.Empleado] { return w.Empleados },
	key:   entity.Empleado.Key,
	prepare: func(ctx context.Context, w *workspace.Workspace, form formView) {
		if form.Open {
			w.Catalog.LoadContactos(ctx)
			w.Catalog.LoadPuestos(ctx)
		}
	},
	values: func(e entity.Empleado) map[string]string {
		return map[string]string{
			"contacto_id":          e.ContactoID.String(),
			"puesto_id":            e.PuestoID.String(),
			"fecha_contratacion":   isoDate(e.FechaContratacion),
			"fecha_desvinculacion": isoDate(e.FechaDesvinculacion),
			"activo":               strconv.FormatBool(e.Activo),
		}
	},
}

// isoDate valor para <input type="date">.
func isoDate(f entity.Fecha) string {
	if f.IsZero() {
		return ""
	}
	return f.Format("2006-01-02")
}
