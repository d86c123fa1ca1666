package pricing

import "github.com/shopspring/decimal"

// Unidades de cobro de una regla.
const (
	UnitPerPage  = "per-page"
	UnitPerCopy  = "per-copy"
	UnitFlatRate = "flat-rate"
)

// Rule regla de precio publicada al vendedor.
type Rule struct {
	Name        string
	Category    string
	BasePrice   decimal.Decimal
	UnitType    string
	Description string
}

// Rules expone las tarifas como reglas legibles.
func (c *Calculator) Rules() []Rule {
	r := c.rates
	return []Rule{
		{Name: "Black & White Printing", Category: "b&w", BasePrice: r.BWPerPage, UnitType: UnitPerPage,
			Description: "Impresión en blanco y negro por página y copia"},
		{Name: "Color Printing", Category: "color", BasePrice: r.ColorPerPage, UnitType: UnitPerPage,
			Description: "Impresión a color por página y copia"},
		{Name: "Duplex Printing", Category: "duplex", BasePrice: r.DuplexPerCopy, UnitType: UnitPerCopy,
			Description: "Recargo por copia impresa a doble cara"},
		{Name: "A3 Paper", Category: "paper-size", BasePrice: r.A3Multiplier, UnitType: "multiplier",
			Description: "Multiplicador sobre impresión y dúplex en papel A3"},
		{Name: "Binding", Category: "binding", BasePrice: r.BindingFlat, UnitType: UnitFlatRate,
			Description: "Encuadernado por pedido"},
		{Name: "Lamination", Category: "laminating", BasePrice: r.LaminationFlat, UnitType: UnitFlatRate,
			Description: "Laminado por pedido"},
	}
}
