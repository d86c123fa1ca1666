package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/memory"
)

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

func seedOrder(t *testing.T, s *memory.Store, id, vendorID, status string, created time.Time) {
	t.Helper()
	ctx := context.Background()
	st, err := s.Students().UpsertByEmail(ctx, &entity.Student{ID: "st-" + id, Name: "Priya", Email: id + "@college.edu"})
	require.NoError(t, err)
	require.NoError(t, s.Orders().Create(ctx, &entity.PrintOrder{
		ID: id, OrderNumber: "JPT" + id, VendorID: vendorID, StudentID: st.ID,
		PageCount: 10, Copies: 1, TotalPrice: decimal.NewFromInt(20),
		Status: status, CreatedAt: created, UpdatedAt: created,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRunOrders_RollbackAlFallar(t *testing.T) {
	s := memory.NewStore()
	seedOrder(t, s, "o1", "v1", entity.OrderStatusPending, base)
	boom := errors.New("boom")

	err := s.RunOrders(context.Background(), func(orders repository.OrderRepository, _ repository.PaymentRepository, _ repository.StudentRepository, sales repository.SaleRepository) error {
		require.NoError(t, orders.UpdateStatus(context.Background(), "o1", entity.OrderStatusCompleted, &base, base))
		require.NoError(t, sales.Create(context.Background(), &entity.Sale{ID: "s1", PrintOrderID: "o1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	o, err := s.Orders().GetForVendor(context.Background(), "o1", "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, o.Order.Status, "el cambio debe deshacerse")
	assert.Nil(t, o.Order.CompletedAt)
	assert.Empty(t, s.SalesForOrder("o1"))
}

func TestRunOrders_ContextoCancelado(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := s.RunOrders(ctx, func(repository.OrderRepository, repository.PaymentRepository, repository.StudentRepository, repository.SaleRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_PedidoAjenoEsInexistente(t *testing.T) {
	s := memory.NewStore()
	seedOrder(t, s, "o1", "v1", entity.OrderStatusPending, base)

	o, err := s.Orders().GetForVendor(context.Background(), "o1", "v2")
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestOrders_DevuelveCopias(t *testing.T) {
	s := memory.NewStore()
	seedOrder(t, s, "o1", "v1", entity.OrderStatusPending, base)

	o, err := s.Orders().GetForVendor(context.Background(), "o1", "v1")
	require.NoError(t, err)
	o.Order.Status = entity.OrderStatusCancelled

	again, err := s.Orders().GetForVendor(context.Background(), "o1", "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, again.Order.Status)
}

func TestOrders_ListCompletedBetween_UsaCompletedAtOUpdatedAt(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	seedOrder(t, s, "o1", "v1", entity.OrderStatusCompleted, base.AddDate(0, 0, -3)) // sin completed_at, updated hace 3 días
	seedOrder(t, s, "o2", "v1", entity.OrderStatusPending, base)
	seedOrder(t, s, "o3", "v1", entity.OrderStatusPending, base.AddDate(0, 0, -5))
	// o3 se completó hoy aunque se creó hace 5 días
	completed := base.Add(2 * time.Hour)
	require.NoError(t, s.Orders().UpdateStatus(ctx, "o3", entity.OrderStatusCompleted, &completed, completed))

	start := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.Local)
	list, err := s.Orders().ListCompletedBetween(ctx, "v1", start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "o3", list[0].Order.ID)
}

func TestOrders_ListByVendor_OrdenYLimite(t *testing.T) {
	s := memory.NewStore()
	seedOrder(t, s, "o1", "v1", entity.OrderStatusPending, base)
	seedOrder(t, s, "o2", "v1", entity.OrderStatusPending, base.Add(time.Minute))
	seedOrder(t, s, "o3", "v1", entity.OrderStatusPending, base.Add(2*time.Minute))
	seedOrder(t, s, "x1", "v2", entity.OrderStatusPending, base.Add(3*time.Minute))

	list, err := s.Orders().ListByVendor(context.Background(), "v1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o3", list[0].Order.ID)
	assert.Equal(t, "o2", list[1].Order.ID)
}

func TestStudents_UpsertConservaExistente(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	first, err := s.Students().UpsertByEmail(ctx, &entity.Student{ID: "a", Name: "Priya", Email: "priya@college.edu"})
	require.NoError(t, err)
	second, err := s.Students().UpsertByEmail(ctx, &entity.Student{ID: "b", Name: "Otro", Email: "priya@college.edu"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Priya", second.Name)
}

func TestPayments_UnoPorPedido(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Payments().Create(ctx, &entity.Payment{ID: "p1", PrintOrderID: "o1"}))
	err := s.Payments().Create(ctx, &entity.Payment{ID: "p2", PrintOrderID: "o1"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestOrders_NumeroUnicoPorVendedor(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Orders().Create(ctx, &entity.PrintOrder{ID: "a", OrderNumber: "JPTSEC12801", VendorID: "v1"}))
	require.NoError(t, s.Orders().Create(ctx, &entity.PrintOrder{ID: "b", OrderNumber: "JPTSEC12801", VendorID: "v2"}),
		"otro vendedor del mismo sector")
	err := s.Orders().Create(ctx, &entity.PrintOrder{ID: "c", OrderNumber: "JPTSEC12801", VendorID: "v1"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestSales_UnaPorPedido(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ID: "s1", PrintOrderID: "o1"}))
	err := s.Sales().Create(ctx, &entity.Sale{ID: "s2", PrintOrderID: "o1"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Len(t, s.SalesForOrder("o1"), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Revocación de sesiones
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionStore_RevocaHastaExpirar(t *testing.T) {
	st := memory.NewSessionStore()
	ctx := context.Background()

	require.NoError(t, st.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	require.NoError(t, st.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))

	revoked, err := st.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = st.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked, "un token ya expirado no necesita revocación")

	revoked, err = st.IsRevoked(ctx, "otro")
	require.NoError(t, err)
	assert.False(t, revoked)
}
