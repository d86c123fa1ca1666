package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jprint-vendor-api/internal/application/orders"
	"github.com/jhoicas/jprint-vendor-api/internal/application/payments"
	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
	"github.com/jhoicas/jprint-vendor-api/internal/application/seed"
	"github.com/jhoicas/jprint-vendor-api/internal/application/usecase"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/order"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/pricing"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/memory"
)

func newSeeder(s *memory.Store) *seed.Seeder {
	log := zerolog.Nop()
	events := ports.NopOrderEvents{}
	return seed.NewSeeder(
		usecase.NewVendorUseCase(s.Vendors()),
		orders.NewCreateOrderUseCase(s, s.Vendors(), pricing.NewCalculator(pricing.DefaultRates()), events, log),
		orders.NewUpdateStatusUseCase(s, order.TransitionPolicy{}, events, log),
		payments.NewPaymentUseCase(s.Orders(), s.Payments(), events, log),
		log,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Seeder
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_VendedoresYPedidosDeEjemplo(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	vendors := seed.DefaultVendors()[:1]

	res, err := newSeeder(s).Run(ctx, vendors, true)
	require.NoError(t, err)
	assert.Equal(t, 1, res.VendorsCreated)
	assert.Equal(t, 3, res.OrdersCreated)

	v, err := s.Vendors().GetByEmail(ctx, "rajesh@sec128.jprint.com")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, v.IsActive)

	list, err := s.Orders().ListByVendor(ctx, v.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)

	var statuses []string
	for _, o := range list {
		statuses = append(statuses, o.Order.Status)
		assert.True(t, strings.HasPrefix(o.Order.OrderNumber, "JPTSEC128"), o.Order.OrderNumber)
		require.NotNil(t, o.Payment)
		assert.Equal(t, entity.PaymentStatusCompleted, o.Payment.Status)
	}
	assert.ElementsMatch(t, []string{entity.OrderStatusPending, entity.OrderStatusAccepted, entity.OrderStatusPrinting}, statuses)
}

func TestRun_EmailExistenteSeOmite(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	vendors := seed.DefaultVendors()[:1]
	sd := newSeeder(s)

	_, err := sd.Run(ctx, vendors, false)
	require.NoError(t, err)

	res, err := sd.Run(ctx, vendors, true)
	require.NoError(t, err)
	assert.Equal(t, 0, res.VendorsCreated)
	assert.Equal(t, 1, res.VendorsSkipped)
	assert.Zero(t, res.OrdersCreated, "un vendedor omitido no recibe pedidos")
}

func TestRun_SinPedidos(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	res, err := newSeeder(s).Run(ctx, seed.DefaultVendors()[:1], false)
	require.NoError(t, err)
	assert.Zero(t, res.OrdersCreated)

	v, err := s.Vendors().GetByEmail(ctx, "rajesh@sec128.jprint.com")
	require.NoError(t, err)
	n, err := s.Orders().CountByVendor(ctx, v.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestLoadVendorsCSV_UTF8(t *testing.T) {
	in := "email,name,sector,password\n" +
		"meera@sec62.jprint.com, Meera Print Services ,SEC-62,secreto\n"
	got, err := seed.LoadVendorsCSV(strings.NewReader(in), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, seed.VendorSeed{
		Name: "Meera Print Services", Email: "meera@sec62.jprint.com", Password: "secreto", Sector: "SEC-62",
	}, got[0])
}

func TestLoadVendorsCSV_Latin1(t *testing.T) {
	// "Impresión" en ISO-8859-1: ó = 0xF3.
	in := "name,email,password,sector\nImpresi\xf3n Norte,norte@jprint.com,x,NORTE\n"
	got, err := seed.LoadVendorsCSV(strings.NewReader(in), "ISO-8859-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Impresión Norte", got[0].Name)
}

func TestLoadVendorsCSV_Errores(t *testing.T) {
	_, err := seed.LoadVendorsCSV(strings.NewReader("name,email\nx,y\n"), "")
	assert.ErrorContains(t, err, "password")

	_, err = seed.LoadVendorsCSV(strings.NewReader("name,email,password,sector\n"), "EBCDIC")
	assert.ErrorContains(t, err, "charset")

	_, err = seed.LoadVendorsCSV(strings.NewReader(""), "")
	assert.Error(t, err)
}
