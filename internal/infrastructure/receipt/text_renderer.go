// Package receipt genera el comprobante en texto plano de un pedido de impresión.
package receipt

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// DateLayout formato de fecha del comprobante.
const DateLayout = "02 Jan 2006"

// TextRenderer implementa orders.ReceiptRenderer en texto plano.
type TextRenderer struct {
	printer *message.Printer
}

// NewTextRenderer construye el renderer. tag define la agrupación de miles del importe
// (language.Und equivale a inglés).
func NewTextRenderer(tag language.Tag) *TextRenderer {
	if tag == language.Und {
		tag = language.English
	}
	return &TextRenderer{printer: message.NewPrinter(tag)}
}

// Render escribe el comprobante. No depende del archivo real del estudiante.
func (r *TextRenderer) Render(_ context.Context, o *entity.OrderWithRelations) ([]byte, error) {
	if o == nil || o.Order == nil {
		return nil, fmt.Errorf("receipt: pedido vacío")
	}
	ord := o.Order

	var b strings.Builder
	b.WriteString("JPRINT ORDER RECEIPT\n")
	b.WriteString("===================\n\n")
	fmt.Fprintf(&b, "Order Number: %s\n", ord.OrderNumber)
	fmt.Fprintf(&b, "Date: %s\n", ord.CreatedAt.Format(DateLayout))
	fmt.Fprintf(&b, "Student: %s\n", o.StudentName())
	fmt.Fprintf(&b, "File: %s\n\n", ord.FileName)
	b.WriteString("Order Details:\n")
	fmt.Fprintf(&b, "- Pages: %d\n", ord.PageCount)
	fmt.Fprintf(&b, "- Copies: %d\n", ord.Copies)
	fmt.Fprintf(&b, "- Color Print: %s\n", yesNo(ord.ColorPrint))
	fmt.Fprintf(&b, "- Duplex: %s\n", yesNo(ord.Duplex))
	fmt.Fprintf(&b, "- Paper Size: %s\n", ord.PaperSize)
	fmt.Fprintf(&b, "- Total Amount: %s\n", r.Amount(ord.TotalPrice.InexactFloat64()))
	fmt.Fprintf(&b, "- Payment: %s (%s)\n", o.PaymentMethod(), o.PaymentStatus())
	if ord.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", ord.Notes)
	}
	return []byte(b.String()), nil
}

// Amount importe en rupias con dos decimales y separador de miles del idioma.
func (r *TextRenderer) Amount(v float64) string {
	return "₹" + r.printer.Sprintf("%.2f", v)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
