// Package pdf implementa la generación del recibo de venta de la joyería.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ N° + Fecha     │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: nombre + método de pago             │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Pieza | Quilate | Peso | Total │
//	│  ───────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto /   │
//	│           TOTAL                               │
//	└───────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appbilling "github.com/jhoicas/Thahab-api/internal/application/billing"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
)

const storeName = "Thahab Jewelry"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorGold = &props.Color{Red: 161, Green: 125, Blue: 35}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// amountPrinter separadores de miles en los montos, como los muestra la caja.
var amountPrinter = message.NewPrinter(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

var _ appbilling.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(sale entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sale Receipt", true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.5}))
	m.AddRows(customerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(sale.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y número de recibo + fecha (der).
func headerRow(sale entity.Sale) core.Row {
	ref := sale.ID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorGold, Top: 1,
			}),
			text.New("Gold & Jewelry", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("SALE RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorGold, Top: 1,
			}),
			text.New("#"+ref, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New(sale.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// customerRow: nombre del cliente y método de pago.
func customerRow(sale entity.Sale) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorGold, Top: 1,
			}),
			text.New(sale.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
		),
		col.New(4).Add(
			text.New("PAYMENT", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right,
				Color: colorGold, Top: 1,
			}),
			text.New(sale.PaymentMethod, props.Text{
				Size: 9, Align: align.Right, Top: 5,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGold, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 4, align.Left),
		h("Karat", 2, align.Center),
		h("Weight (g)", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea del carrito.
func tableItemRows(items []entity.CartItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				string(it.Karat)+"K",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				it.Weight.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatAmount(it.TotalPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(sale entity.Sale) core.Row {
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
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorGold, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorGold, Right: 1,
		})
	}

	return row.New(30).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("Discount:"),
			label("Tax:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(formatAmount(sale.Subtotal)),
			value(formatAmount(sale.Discount)),
			value(formatAmount(sale.Tax)),
			grandValue(formatAmount(sale.Total)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount separadores de miles sin decimales. Ej: 18650 → "18,650".
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return amountPrinter.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(0)))
}
