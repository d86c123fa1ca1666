package receipt

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

func sampleOrder() *entity.OrderWithRelations {
	return &entity.OrderWithRelations{
		Order: &entity.PrintOrder{
			OrderNumber: "JPTSEC12803",
			FileName:    "tesis.pdf",
			PageCount:   10,
			Copies:      2,
			ColorPrint:  true,
			PaperSize:   entity.PaperA3,
			TotalPrice:  decimal.NewFromInt(324),
			Notes:       "Recoger a las 5",
			CreatedAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		Student: &entity.Student{Name: "Priya Sharma"},
	}
}

func TestTextRenderer_Contenido(t *testing.T) {
	out, err := NewTextRenderer(language.English).Render(context.Background(), sampleOrder())
	require.NoError(t, err)
	s := string(out)

	assert.Contains(t, s, "JPRINT ORDER RECEIPT")
	assert.Contains(t, s, "Order Number: JPTSEC12803")
	assert.Contains(t, s, "Date: 10 Mar 2026")
	assert.Contains(t, s, "Student: Priya Sharma")
	assert.Contains(t, s, "- Color Print: Yes")
	assert.Contains(t, s, "- Duplex: No")
	assert.Contains(t, s, "- Paper Size: A3")
	assert.Contains(t, s, "- Total Amount: ₹324.00")
	assert.Contains(t, s, "- Payment: CASH (PENDING)", "sin pago: CASH pendiente")
	assert.Contains(t, s, "Notes: Recoger a las 5")
}

func TestTextRenderer_SinNotas(t *testing.T) {
	o := sampleOrder()
	o.Order.Notes = ""
	out, err := NewTextRenderer(language.Und).Render(context.Background(), o)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Notes:")
}

func TestTextRenderer_Amount(t *testing.T) {
	r := NewTextRenderer(language.English)
	assert.Equal(t, "₹1,234.50", r.Amount(1234.5))
	assert.Equal(t, "₹0.00", r.Amount(0))
}

func TestTextRenderer_PedidoNil(t *testing.T) {
	_, err := NewTextRenderer(language.English).Render(context.Background(), nil)
	assert.Error(t, err)
}
