package http

import (
	"context"
	"strconv"

	"github.com/jhoicas/autogestion/internal/application/store"
	"github.com/jhoicas/autogestion/internal/application/workspace"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// clientesPage /dashboard/clientes
var clientesPage = entityPage[entity.Cliente]{
	page:  "clientes",
	title: "Clientes",
	base:  "/dashboard/clientes",
	coll:  func(w *workspace.Workspace) *store.Collection[entity.Cliente] { return w.Clientes },
	key:   entity.Cliente.Key,
	prepare: func(ctx context.Context, w *workspace.Workspace, form formView) {
		if form.Open {
			w.Catalog.LoadContactos(ctx)
		}
	},
	values: func(c entity.Cliente) map[string]string {
		return map[string]string{
			"contacto_id":   c.ContactoID.String(),
			"notas_cliente": c.NotasCliente,
			"activo":        strconv.FormatBool(c.Activo),
		}
	},
}
