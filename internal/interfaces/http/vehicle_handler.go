package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autogestion/internal/application/store"
	"github.com/jhoicas/autogestion/internal/application/workspace"
	"github.com/jhoicas/autogestion/internal/domain/entity"
	"github.com/jhoicas/autogestion/internal/infrastructure/pdf"
)

// vehiculosPage /dashboard/vehiculos. El backend no permite modificar vehículos.
var vehiculosPage = entityPage[entity.Vehiculo]{
	page:  "vehiculos",
	title: "Vehículos",
	base:  "/dashboard/vehiculos",
	coll:  func(w *workspace.Workspace) *store.Collection[entity.Vehiculo] { return w.Vehiculos },
	key:   entity.Vehiculo.Key,
	prepare: func(ctx context.Context, w *workspace.Workspace, form formView) {
		if form.Open {
			w.Catalog.LoadFormOptions(ctx)
		}
	},
	extra: vehiculosData,
}

// vehiculosExtra datos propios de la página de vehículos.
type vehiculosExtra struct {
	Summary          pdf.Summary
	Estados          []string
	TiposAdquisicion []string
}

func vehiculosData(d entityData[entity.Vehiculo]) any {
	return vehiculosExtra{
		Summary:          pdf.Summarize(d.State.Items),
		Estados:          entity.EstadosInventario,
		TiposAdquisicion: entity.TiposAdquisicion,
	}
}

// ExportVehiculos GET /dashboard/vehiculos/export.pdf: inventario actual en PDF.
func (h *PagesHandler) ExportVehiculos(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	ctx := c.UserContext()
	w.Vehiculos.List(ctx)
	if done, err := collapsed(c, vehiculosPage.roles, vehiculosPage.base); done {
		return err
	}
	st := w.Vehiculos.Snapshot()
	if !st.Loaded() {
		// El aviso de la lectura fallida se muestra en el listado.
		return c.Redirect(vehiculosPage.base, fiber.StatusSeeOther)
	}

	rep := pdf.InventoryReport{
		Dealer:      h.dealer,
		GeneratedAt: time.Now(),
		Vehiculos:   st.Items,
	}
	if id := GetSession(c).Identity; id != nil {
		rep.GeneratedBy = id.Email
	}
	out, err := h.pdf.GenerateInventoryPDF(ctx, rep)
	if err != nil {
		h.log.Error().Err(err).Msg("no se pudo generar el reporte de inventario")
		w.Flash.Error("Error al generar el reporte de inventario")
		return c.Redirect(vehiculosPage.base, fiber.StatusSeeOther)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario-vehiculos.pdf"`)
	return c.Send(out)
}
