package http

import (
	"context"
	"strconv"

	"github.com/jhoicas/autogestion/internal/application/store"
	"github.com/jhoicas/autogestion/internal/application/workspace"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// proveedoresPage /dashboard/proveedores
var proveedoresPage = entityPage[entity.Proveedor]{
	page:  "proveedores",
	title: "Proveedores",
	base:  "/dashboard/proveedores",
	coll:  func(w *workspace.Workspace) *store.Collection[entity.Proveedor] { return w.Proveedores },
	key:   entity.Proveedor.Key,
	prepare: func(ctx context.Context, w *workspace.Workspace, form formView) {
		if form.Open {
			w.Catalog.LoadContactos(ctx)
		}
	},
	values: func(p entity.Proveedor) map[string]string {
		return map[string]string{
			"contacto_id":    p.ContactoID.String(),
			"tipo_proveedor": p.TipoProveedor,
			"activo":         strconv.FormatBool(p.Activo),
		}
	},
}
