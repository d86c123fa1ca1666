// Package pricing implementa las reglas de precio de impresión (servicio de dominio).
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// Rates tarifas vigentes.
type Rates struct {
	BWPerPage      decimal.Decimal
	ColorPerPage   decimal.Decimal
	DuplexPerCopy  decimal.Decimal
	A3Multiplier   decimal.Decimal
	BindingFlat    decimal.Decimal
	LaminationFlat decimal.Decimal
}

// DefaultRates tarifas de referencia de las imprentas del campus.
func DefaultRates() Rates {
	return Rates{
		BWPerPage:      decimal.NewFromInt(2),
		ColorPerPage:   decimal.NewFromInt(8),
		DuplexPerCopy:  decimal.NewFromInt(1),
		A3Multiplier:   decimal.NewFromInt(2),
		BindingFlat:    decimal.NewFromInt(50),
		LaminationFlat: decimal.NewFromInt(10),
	}
}

// Job trabajo a cotizar.
type Job struct {
	Pages      int
	Copies     int
	ColorPrint bool
	Duplex     bool
	PaperSize  string
	Binding    bool
	Lamination bool
}

// Quote desglose del precio.
type Quote struct {
	Printing       decimal.Decimal // tarifa por página × páginas × copias
	Duplex         decimal.Decimal
	SizeAdjustment decimal.Decimal // recargo A3 sobre impresión + dúplex
	Binding        decimal.Decimal
	Lamination     decimal.Decimal
	Total          decimal.Decimal
}

// Calculator calcula precios con unas tarifas fijas.
type Calculator struct {
	rates Rates
}

// NewCalculator construye el calculador.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Quote calcula el precio:
// total = (tarifa × páginas × copias + dúplex × copias) × multiplicador A3 + encuadernado + laminado.
func (c *Calculator) Quote(job Job) (Quote, error) {
	if err := validateJob(job); err != nil {
		return Quote{}, err
	}
	pages := decimal.NewFromInt(int64(job.Pages))
	copies := decimal.NewFromInt(int64(job.Copies))

	var q Quote
	rate := c.rates.BWPerPage
	if job.ColorPrint {
		rate = c.rates.ColorPerPage
	}
	q.Printing = rate.Mul(pages).Mul(copies)
	if job.Duplex {
		q.Duplex = c.rates.DuplexPerCopy.Mul(copies)
	}
	subtotal := q.Printing.Add(q.Duplex)
	if job.PaperSize == entity.PaperA3 {
		q.SizeAdjustment = subtotal.Mul(c.rates.A3Multiplier.Sub(decimal.NewFromInt(1)))
	}
	if job.Binding {
		q.Binding = c.rates.BindingFlat
	}
	if job.Lamination {
		q.Lamination = c.rates.LaminationFlat
	}
	q.Total = subtotal.Add(q.SizeAdjustment).Add(q.Binding).Add(q.Lamination).Round(2)
	return q, nil
}

// IsPaperSize indica si el tamaño es soportado.
func IsPaperSize(s string) bool {
	switch s {
	case entity.PaperA4, entity.PaperA3, entity.PaperLetter, entity.PaperLegal:
		return true
	}
	return false
}

func validateJob(job Job) error {
	if job.Pages < 1 {
		return fmt.Errorf("%w: pageCount debe ser al menos 1", domain.ErrInvalidInput)
	}
	if job.Copies < 1 {
		return fmt.Errorf("%w: copies debe ser al menos 1", domain.ErrInvalidInput)
	}
	if !IsPaperSize(job.PaperSize) {
		return fmt.Errorf("%w: paperSize %q", domain.ErrInvalidInput, job.PaperSize)
	}
	return nil
}
