// Package pdf genera el recibo imprimible de una venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Venta + Fecha        │
//	│  ─────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Cédula + contacto        │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Talla | P.Unit    │
//	│  ─────────────────────────────────────────  │
//	│  TOTALES: USD / Bs / Tipo de pago           │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/frankUCLA/modasoft/internal/application/sales"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 30, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// storeName nombre impreso en el encabezado del recibo.
const storeName = "ModaSoft Boutique"

// ReceiptGenerator genera el recibo de venta usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Generate produce el PDF del recibo y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(r *sales.Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(r))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: tienda (izq), número y fecha de la venta (der).
func headerRow(r *sales.Receipt) core.Row {
	fecha := r.Sale.FechaHora.Format("02/01/2006 03:04 PM")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("VENTA N° %d", r.Sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente; si la venta no tiene cliente, se indica.
func clientRow(r *sales.Receipt) core.Row {
	if r.Client == nil {
		return row.New(10).Add(
			col.New(12).Add(
				text.New("CLIENTE", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New("Venta sin cliente registrado", props.Text{
					Size: 9, Top: 6, Color: colorGray,
				}),
			),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(r.Client.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Cédula: %s   |   Tel: %s   |   Email: %s",
				r.Client.Cedula,
				nonEmpty(r.Client.Telefono, "—"),
				nonEmpty(r.Client.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la línea de venta.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("Talla", 2, align.Center),
		h("Precio Unit.", 3, align.Right),
	)
}

// detailRow: la línea de la venta, o un aviso si se registró sin detalle.
func detailRow(r *sales.Receipt) core.Row {
	if r.Detail == nil {
		return row.New(7).Add(
			col.New(12).Add(text.New(
				"Venta registrada sin detalle de producto",
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
			)),
		)
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", r.Detail.Cantidad),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			nonEmpty(r.ProductoNombre, "—"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			nonEmpty(r.Talla, "—"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			"$"+r.Detail.PrecioUnitario.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: totales en ambas monedas y tipo de pago.
func totalsRow(r *sales.Receipt) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Tipo de pago:"),
			label("Total Bs:"),
			grandLabel("TOTAL USD:"),
		),
		col.New(4).Add(
			value(r.Sale.TipoPago),
			value("Bs "+r.Sale.TotalBs.StringFixed(2)),
			grandValue("$"+r.Sale.TotalVenta.StringFixed(2)),
		),
		col.New(1),
	)
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
