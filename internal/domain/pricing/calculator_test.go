package pricing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/pricing"
)

func TestQuote_BlancoYNegroSimple(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultRates())

	q, err := calc.Quote(pricing.Job{Pages: 10, Copies: 1, PaperSize: "A4"})
	require.NoError(t, err)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(20)), "10 páginas b/n = 20, got %s", q.Total)
	assert.True(t, q.Duplex.IsZero())
}

func TestQuote_ColorDuplexA3(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultRates())

	q, err := calc.Quote(pricing.Job{Pages: 10, Copies: 2, ColorPrint: true, Duplex: true, PaperSize: "A3"})
	require.NoError(t, err)

	// (8·10·2 + 1·2) · 2 = 324
	assert.True(t, q.Printing.Equal(decimal.NewFromInt(160)))
	assert.True(t, q.Duplex.Equal(decimal.NewFromInt(2)))
	assert.True(t, q.SizeAdjustment.Equal(decimal.NewFromInt(162)))
	assert.True(t, q.Total.Equal(decimal.NewFromInt(324)), "got %s", q.Total)
}

func TestQuote_ExtrasPlanos(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultRates())

	q, err := calc.Quote(pricing.Job{Pages: 5, Copies: 1, PaperSize: "A4", Binding: true, Lamination: true})
	require.NoError(t, err)
	// 2·5 + 50 + 10
	assert.True(t, q.Total.Equal(decimal.NewFromInt(70)), "got %s", q.Total)
}

func TestQuote_EntradaInvalida(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultRates())

	for _, job := range []pricing.Job{
		{Pages: 0, Copies: 1, PaperSize: "A4"},
		{Pages: 1, Copies: 0, PaperSize: "A4"},
		{Pages: 1, Copies: 1, PaperSize: "B5"},
	} {
		_, err := calc.Quote(job)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "%+v", job)
	}
}

func TestRules_ReflejanTarifas(t *testing.T) {
	rates := pricing.DefaultRates()
	rates.ColorPerPage = decimal.NewFromInt(10)
	rules := pricing.NewCalculator(rates).Rules()

	require.Len(t, rules, 6)
	assert.Equal(t, "color", rules[1].Category)
	assert.True(t, rules[1].BasePrice.Equal(decimal.NewFromInt(10)))
}
