// Package pdf genera el reporte de inventario de vehículos en A4 con Maroto v2.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + concesionario  │  Fecha + generado por     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: unidades por estado / valor de inventario          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Vehículo | Año | VIN | Color | Estado | Precios      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// InventoryReport datos del reporte.
type InventoryReport struct {
	Dealer      string // nombre del concesionario (APP_NAME)
	GeneratedBy string // email o usuario que lo pidió
	GeneratedAt time.Time
	Vehiculos   []entity.Vehiculo
}

// Summary totales del reporte.
type Summary struct {
	Unidades   int
	PorEstado  map[string]int
	ValorTotal decimal.Decimal // suma de precio_base
}

// Summarize calcula los totales de una lista de vehículos.
func Summarize(vs []entity.Vehiculo) Summary {
	s := Summary{PorEstado: map[string]int{}, ValorTotal: decimal.Zero}
	for _, v := range vs {
		s.Unidades++
		s.PorEstado[nonEmpty(v.EstadoInventario, "Sin estado")]++
		s.ValorTotal = s.ValorTotal.Add(v.PrecioBase)
	}
	return s
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoGenerator genera el reporte de inventario usando Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoGenerator) GenerateInventoryPDF(ctx context.Context, rep InventoryReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rep.GeneratedAt.IsZero() {
		rep.GeneratedAt = time.Now()
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario de vehículos", true).
		WithAuthor(nonEmpty(rep.Dealer, "AutoGestión"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(Summarize(rep.Vehiculos))...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(rep.Vehiculos) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay vehículos registrados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableDetailRows(rep.Vehiculos)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Precios en la moneda configurada en el backend. "+
			"El inventario refleja la última consulta realizada desde el panel.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep InventoryReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("INVENTARIO DE VEHÍCULOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(rep.Dealer, "AutoGestión"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Generado por: "+nonEmpty(rep.GeneratedBy, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func summaryRows(s Summary) []core.Row {
	estados := make([]string, 0, len(s.PorEstado))
	for e := range s.PorEstado {
		estados = append(estados, e)
	}
	sort.Strings(estados)
	parts := make([]string, 0, len(estados))
	for _, e := range estados {
		parts = append(parts, fmt.Sprintf("%s: %d", e, s.PorEstado[e]))
	}

	return []core.Row{
		row.New(14).Add(
			col.New(8).Add(
				text.New("RESUMEN", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(nonEmpty(strings.Join(parts, "   |   "), "—"), props.Text{
					Size: 8, Top: 7, Color: colorGray,
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("%d unidades", s.Unidades), props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
				}),
				text.New("Valor base: $"+formatMoney(s.ValorTotal.StringFixed(0)), props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7, Color: colorPrimary,
				}),
			),
		),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Vehículo", 3, align.Left),
		h("Año", 1, align.Center),
		h("VIN", 3, align.Left),
		h("Color", 1, align.Left),
		h("Estado", 2, align.Left),
		h("Precio base", 2, align.Right),
	)
}

func tableDetailRows(vs []entity.Vehiculo) []core.Row {
	result := make([]core.Row, 0, len(vs))
	for _, v := range vs {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(nonEmpty(v.Modelo.Etiqueta(), "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(v.Anio),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(nonEmpty(v.VIN, "—"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(nonEmpty(v.Color.Nombre, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(v.EstadoInventario, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(v.PrecioBase.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
