// Package pdf genera el comprobante de un pedido de impresión en PDF (Maroto v2).
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: JPRINT + N° pedido │ Fecha        │
//	│  ───────────────────────────────────────  │
//	│  ESTUDIANTE: nombre / email / roll        │
//	│  ARCHIVO: nombre + tamaño                 │
//	│  ───────────────────────────────────────  │
//	│  DETALLE: Páginas | Copias | Color | ...   │
//	│  ───────────────────────────────────────  │
//	│  TOTAL + estado del pago                  │
//	│  NOTAS (opcional)                         │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorHeader  = &props.Color{Red: 52, Green: 58, Blue: 64}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// ReceiptRenderer implementa orders.ReceiptRenderer usando Maroto v2.
type ReceiptRenderer struct {
	amount func(float64) string
}

// NewReceiptRenderer construye el renderer. amount formatea importes; nil usa ₹ con dos decimales.
func NewReceiptRenderer(amount func(float64) string) *ReceiptRenderer {
	if amount == nil {
		amount = func(v float64) string { return fmt.Sprintf("₹%.2f", v) }
	}
	return &ReceiptRenderer{amount: amount}
}

// Render genera el PDF y devuelve sus bytes.
func (g *ReceiptRenderer) Render(_ context.Context, o *entity.OrderWithRelations) ([]byte, error) {
	if o == nil || o.Order == nil {
		return nil, fmt.Errorf("pdf: pedido vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("JPRINT "+o.Order.OrderNumber, true).
		WithAuthor("JPRINT", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(o.Order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(studentRow(o.Student))
	m.AddRows(fileRow(o.Order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(o.Order))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(o))
	if o.Order.Notes != "" {
		m.AddRows(notesRow(o.Order.Notes))
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(barcodeRow(o.Order.OrderNumber))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(o *entity.PrintOrder) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("JPRINT ORDER RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(o.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 8,
			}),
		),
		col.New(5).Add(
			text.New("Date: "+o.CreatedAt.Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Status: "+o.Status, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func studentRow(s *entity.Student) core.Row {
	if s == nil {
		s = &entity.Student{}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("STUDENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(s.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Roll: %s",
				nonEmpty(s.Email, "—"),
				nonEmpty(s.RollNumber, "—"),
			), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func fileRow(o *entity.PrintOrder) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("File: %s (%s)", o.FileName, fileSize(o.FileSize)), props.Text{
				Size: 8, Top: 2,
			}),
		),
	)
}

// detailHeaderRow cabecera de la tabla con texto blanco sobre fondo oscuro.
func detailHeaderRow() core.Row {
	h := func(label string) core.Col {
		return col.New(2).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorWhite, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Pages"), h("Copies"), h("Color"), h("Duplex"), h("Paper"), h("Total pages"),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func detailRow(o *entity.PrintOrder) core.Row {
	c := func(v string) core.Col {
		return col.New(2).Add(text.New(v, props.Text{Size: 8, Align: align.Center, Top: 1}))
	}
	return row.New(7).Add(
		c(fmt.Sprint(o.PageCount)),
		c(fmt.Sprint(o.Copies)),
		c(yesNo(o.ColorPrint)),
		c(yesNo(o.Duplex)),
		c(o.PaperSize),
		c(fmt.Sprint(o.TotalPages())),
	)
}

func (g *ReceiptRenderer) totalRow(o *entity.OrderWithRelations) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Payment: %s (%s)", o.PaymentMethod(), o.PaymentStatus()), props.Text{
				Size: 8, Top: 3, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL AMOUNT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(g.amount(o.Order.TotalPrice.InexactFloat64()), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
		),
	)
}

func notesRow(notes string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Notes: "+notes, props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// barcodeRow código de barras con el número de pedido para el mostrador.
func barcodeRow(orderNumber string) core.Row {
	return row.New(14).Add(
		col.New(3),
		col.New(6).Add(code.NewBar(orderNumber, props.Barcode{Percent: 90, Center: true})),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// fileSize tamaño legible. Ej: 2048 → "2.0 KB".
func fileSize(n int64) string {
	switch {
	case n <= 0:
		return "—"
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
