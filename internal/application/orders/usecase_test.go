package orders_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/orders"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/order"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/pricing"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	vendorA = "00000000-0000-0000-0000-00000000000a"
	vendorB = "00000000-0000-0000-0000-00000000000b"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

// recorder implementa ports.OrderEvents guardando lo recibido.
type recorder struct {
	created  int
	changes  []string
	sales    []decimal.Decimal
	payments []string
}

func (r *recorder) OrderCreated(string)                 { r.created++ }
func (r *recorder) OrderStatusChanged(from, to string)  { r.changes = append(r.changes, from+"->"+to) }
func (r *recorder) SaleRecorded(amount decimal.Decimal) { r.sales = append(r.sales, amount) }
func (r *recorder) PaymentStatusChanged(s string)       { r.payments = append(r.payments, s) }

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	for id, sector := range map[string]string{vendorA: "SEC-128", vendorB: "SEC-62"} {
		require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{
			ID: id, Name: "Shop " + sector, Email: strings.ToLower(sector) + "@jprint.com",
			Sector: sector, IsActive: true,
		}))
	}
	return s
}

// seedOrder crea un pedido del vendedor con un pago en paymentStatus ("" = sin pago).
func seedOrder(t *testing.T, s *memory.Store, id, vendorID, status, paymentStatus string) {
	t.Helper()
	ctx := context.Background()
	st, err := s.Students().UpsertByEmail(ctx, &entity.Student{ID: "st-" + id, Name: "Priya Sharma", Email: id + "@college.edu"})
	require.NoError(t, err)
	require.NoError(t, s.Orders().Create(ctx, &entity.PrintOrder{
		ID: id, OrderNumber: "JPT" + id, VendorID: vendorID, StudentID: st.ID,
		FileName: "notes.pdf", PageCount: 10, Copies: 2, PaperSize: entity.PaperA4,
		TotalPrice: decimal.NewFromInt(150), Status: status, Priority: entity.PriorityNormal,
		CreatedAt: fixedNow.Add(-time.Hour), UpdatedAt: fixedNow.Add(-time.Hour),
	}))
	if paymentStatus != "" {
		require.NoError(t, s.Payments().Create(ctx, &entity.Payment{
			ID: "pay-" + id, PrintOrderID: id, StudentID: st.ID, Amount: decimal.NewFromInt(150),
			Method: entity.PaymentMethodUPI, Status: paymentStatus,
		}))
	}
}

func newUpdateUC(s *memory.Store, strict bool, ev *recorder) *orders.UpdateStatusUseCase {
	return orders.NewUpdateStatusUseCase(s, order.TransitionPolicy{Strict: strict}, ev, zerolog.Nop()).WithClock(clock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_CompletarConPagoRegistraUnaVenta(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusPrinting, entity.PaymentStatusCompleted)
	ev := &recorder{}
	uc := newUpdateUC(s, false, ev)

	out, err := uc.UpdateStatus(context.Background(), vendorA, "o1", dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)
	assert.Equal(t, entity.PaymentStatusCompleted, out.PaymentStatus)
	assert.Equal(t, "Priya Sharma", out.StudentName)
	assert.Equal(t, 10, out.Pages)

	sales := s.SalesForOrder("o1")
	require.Len(t, sales, 1)
	assert.Equal(t, vendorA, sales[0].VendorID)
	assert.Equal(t, 1, sales[0].TotalOrders)
	assert.True(t, sales[0].TotalRevenue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, entity.SaleStatusCompleted, sales[0].Status)

	o, err := s.Orders().GetForVendor(context.Background(), "o1", vendorA)
	require.NoError(t, err)
	require.NotNil(t, o.Order.CompletedAt)
	assert.True(t, o.Order.CompletedAt.Equal(fixedNow))
	assert.Equal(t, []string{"PRINTING->COMPLETED"}, ev.changes)
	assert.Len(t, ev.sales, 1)
}

func TestUpdateStatus_RecompletarNoDuplicaVenta(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusPrinting, entity.PaymentStatusCompleted)
	uc := newUpdateUC(s, false, &recorder{})
	req := dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCompleted}

	_, err := uc.UpdateStatus(context.Background(), vendorA, "o1", req)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), vendorA, "o1", req)
	require.NoError(t, err)

	assert.Len(t, s.SalesForOrder("o1"), 1)
}

func TestUpdateStatus_PermisivoReentradaNoDuplicaVenta(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusPrinting, entity.PaymentStatusCompleted)
	uc := newUpdateUC(s, false, &recorder{})
	ctx := context.Background()

	for _, st := range []string{entity.OrderStatusCompleted, entity.OrderStatusAccepted, entity.OrderStatusCompleted} {
		_, err := uc.UpdateStatus(ctx, vendorA, "o1", dto.UpdateOrderStatusRequest{Status: st})
		require.NoError(t, err)
	}
	assert.Len(t, s.SalesForOrder("o1"), 1)
}

func TestUpdateStatus_PagoCompletadoTrasCompletarRegistraVenta(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusPrinting, entity.PaymentStatusPending)
	ev := &recorder{}
	uc := newUpdateUC(s, false, ev)
	ctx := context.Background()
	req := dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCompleted}

	_, err := uc.UpdateStatus(ctx, vendorA, "o1", req)
	require.NoError(t, err)
	assert.Empty(t, s.SalesForOrder("o1"), "pago pendiente: sin venta")

	paidAt := fixedNow.Add(time.Minute)
	require.NoError(t, s.Payments().UpdateStatus(ctx, "pay-o1", entity.PaymentStatusCompleted, &paidAt, paidAt))

	out, err := uc.UpdateStatus(ctx, vendorA, "o1", req)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, out.PaymentStatus)

	sales := s.SalesForOrder("o1")
	require.Len(t, sales, 1)
	assert.True(t, sales[0].TotalRevenue.Equal(decimal.NewFromInt(150)))
	assert.Len(t, ev.sales, 1)

	o, err := s.Orders().GetForVendor(ctx, "o1", vendorA)
	require.NoError(t, err)
	require.NotNil(t, o.Order.CompletedAt)
	assert.True(t, o.Order.CompletedAt.Equal(fixedNow), "completedAt conserva la primera entrada en COMPLETED")

	_, err = uc.UpdateStatus(ctx, vendorA, "o1", req)
	require.NoError(t, err)
	assert.Len(t, s.SalesForOrder("o1"), 1)
}

func TestUpdateStatus_SinPagoCompletadoNoHayVenta(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "pend", vendorA, entity.OrderStatusPrinting, entity.PaymentStatusPending)
	seedOrder(t, s, "nopay", vendorA, entity.OrderStatusPrinting, "")
	uc := newUpdateUC(s, false, &recorder{})

	for _, id := range []string{"pend", "nopay"} {
		out, err := uc.UpdateStatus(context.Background(), vendorA, id, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCompleted})
		require.NoError(t, err)
		assert.Empty(t, s.SalesForOrder(id), id)
		assert.Equal(t, entity.PaymentStatusPending, out.PaymentStatus, id)
	}
}

func TestUpdateStatus_PedidoAjenoEsNotFound(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorB, entity.OrderStatusPending, entity.PaymentStatusPending)
	uc := newUpdateUC(s, false, &recorder{})

	_, err := uc.UpdateStatus(context.Background(), vendorA, "o1", dto.UpdateOrderStatusRequest{Status: entity.OrderStatusAccepted})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.UpdateStatus(context.Background(), vendorA, "no-existe", dto.UpdateOrderStatusRequest{Status: entity.OrderStatusAccepted})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	o, err := s.Orders().GetForVendor(context.Background(), "o1", vendorB)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, o.Order.Status, "el pedido ajeno no cambia")
}

func TestUpdateStatus_DestinoInvalido(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusAccepted, "")
	uc := newUpdateUC(s, false, &recorder{})

	for _, st := range []string{entity.OrderStatusPending, "SHIPPED", ""} {
		_, err := uc.UpdateStatus(context.Background(), vendorA, "o1", dto.UpdateOrderStatusRequest{Status: st})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "%q", st)
	}
}

func TestUpdateStatus_EstrictoRechazaRetroceso(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusPrinting, "")
	ev := &recorder{}

	_, err := newUpdateUC(s, true, ev).UpdateStatus(context.Background(), vendorA, "o1", dto.UpdateOrderStatusRequest{Status: entity.OrderStatusAccepted})
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
	assert.Empty(t, ev.changes)

	out, err := newUpdateUC(s, false, ev).UpdateStatus(context.Background(), vendorA, "o1", dto.UpdateOrderStatusRequest{Status: entity.OrderStatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de pedido
// ──────────────────────────────────────────────────────────────────────────────

func newCreateUC(s *memory.Store, ev *recorder) *orders.CreateOrderUseCase {
	return orders.NewCreateOrderUseCase(s, s.Vendors(), pricing.NewCalculator(pricing.DefaultRates()), ev, zerolog.Nop()).WithClock(clock)
}

func validCreate() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Student:    dto.StudentInput{Name: "Amit Kumar", Email: "amit@college.edu", RollNumber: "CS21B042"},
		FileName:   "thesis.pdf",
		FileSize:   204800,
		PageCount:  10,
		Copies:     2,
		ColorPrint: true,
		Duplex:     true,
		PaperSize:  entity.PaperA3,
	}
}

func TestCreate_NumeroYPrecio(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusPending, "")
	seedOrder(t, s, "o2", vendorA, entity.OrderStatusPending, "")
	ev := &recorder{}

	out, err := newCreateUC(s, ev).Create(context.Background(), vendorA, validCreate())
	require.NoError(t, err)

	assert.Equal(t, "JPTSEC12803", out.OrderNumber)
	assert.True(t, out.Amount.Equal(decimal.NewFromInt(324)), "got %s", out.Amount)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, entity.PaymentStatusPending, out.PaymentStatus)
	assert.Equal(t, 1, ev.created)

	pay, err := s.Payments().GetByOrderID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, pay)
	assert.True(t, pay.Amount.Equal(out.Amount))
	assert.Equal(t, entity.PaymentMethodCash, pay.Method, "método por defecto")
	assert.True(t, strings.HasPrefix(pay.TransactionID, "TXN"))
	assert.Nil(t, pay.PaidAt)
}

func TestCreate_EstudianteExistenteSeReutiliza(t *testing.T) {
	s := newStore(t)
	uc := newCreateUC(s, &recorder{})
	first, err := uc.Create(context.Background(), vendorA, validCreate())
	require.NoError(t, err)

	in := validCreate()
	in.Student.Name = "Otro Nombre"
	second, err := uc.Create(context.Background(), vendorA, in)
	require.NoError(t, err)

	assert.Equal(t, "Amit Kumar", second.StudentName)
	assert.Equal(t, "JPTSEC12801", first.OrderNumber)
	assert.Equal(t, "JPTSEC12802", second.OrderNumber)
}

func TestCreate_VendedoresDelMismoSector(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	const vendorC = "00000000-0000-0000-0000-00000000000c"
	require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{
		ID: vendorC, Name: "Copias 128", Email: "copias128@jprint.com", Sector: "SEC-128", IsActive: true,
	}))
	uc := newCreateUC(s, &recorder{})

	a, err := uc.Create(ctx, vendorA, validCreate())
	require.NoError(t, err)
	c, err := uc.Create(ctx, vendorC, validCreate())
	require.NoError(t, err)

	assert.Equal(t, "JPTSEC12801", a.OrderNumber)
	assert.Equal(t, "JPTSEC12801", c.OrderNumber, "la secuencia es por vendedor")
	assert.NotEqual(t, a.ID, c.ID)

	_, err = s.Orders().GetForVendor(ctx, c.ID, vendorC)
	require.NoError(t, err)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	s := newStore(t)
	uc := newCreateUC(s, &recorder{})

	cases := map[string]func(*dto.CreateOrderRequest){
		"sin email":    func(in *dto.CreateOrderRequest) { in.Student.Email = "" },
		"sin archivo":  func(in *dto.CreateOrderRequest) { in.FileName = " " },
		"cero páginas": func(in *dto.CreateOrderRequest) { in.PageCount = 0 },
		"cero copias":  func(in *dto.CreateOrderRequest) { in.Copies = 0 },
		"papel":        func(in *dto.CreateOrderRequest) { in.PaperSize = "B5" },
		"prioridad":    func(in *dto.CreateOrderRequest) { in.Priority = "ASAP" },
		"método":       func(in *dto.CreateOrderRequest) { in.PaymentMethod = "CHEQUE" },
	}
	for name, mutate := range cases {
		in := validCreate()
		mutate(&in)
		_, err := uc.Create(context.Background(), vendorA, in)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), name)
	}
	n, err := s.Orders().CountByVendor(context.Background(), vendorA)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas y comprobante
// ──────────────────────────────────────────────────────────────────────────────

func TestQuery_GetYHistory(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusPending, entity.PaymentStatusPending)
	seedOrder(t, s, "o2", vendorB, entity.OrderStatusPending, "")
	uc := orders.NewQueryUseCase(s.Orders())

	d, err := uc.Get(context.Background(), vendorA, "o1")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", d.Student.Name)
	require.NotNil(t, d.Payment)
	assert.Equal(t, entity.PaymentMethodUPI, d.Payment.Method)
	assert.Nil(t, d.Notes)

	_, err = uc.Get(context.Background(), vendorA, "o2")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	h, err := uc.History(context.Background(), vendorA)
	require.NoError(t, err)
	require.Len(t, h, 1)
	assert.Equal(t, "o1", h[0].ID)
}

type fakeRenderer struct{ body string }

func (f fakeRenderer) Render(context.Context, *entity.OrderWithRelations) ([]byte, error) {
	return []byte(f.body), nil
}

func TestReceipt_FormatosYPropiedad(t *testing.T) {
	s := newStore(t)
	seedOrder(t, s, "o1", vendorA, entity.OrderStatusPending, "")
	uc := orders.NewReceiptUseCase(s.Orders(), fakeRenderer{"txt"}, fakeRenderer{"pdf"})

	r, err := uc.Download(context.Background(), vendorA, "o1", "")
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", r.Filename)
	assert.Equal(t, "txt", string(r.Body))

	r, err = uc.Download(context.Background(), vendorA, "o1", orders.ReceiptPDF)
	require.NoError(t, err)
	assert.Equal(t, "notes-receipt.pdf", r.Filename)
	assert.Equal(t, "application/pdf", r.ContentType)

	_, err = uc.Download(context.Background(), vendorB, "o1", "")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.Download(context.Background(), vendorA, "o1", "docx")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
