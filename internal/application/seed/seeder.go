// Package seed carga datos de demostración: vendedores y, por cada uno, estudiantes
// con pedidos en distintos estados. Usa los mismos casos de uso que la API.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/orders"
	"github.com/jhoicas/jprint-vendor-api/internal/application/payments"
	"github.com/jhoicas/jprint-vendor-api/internal/application/usecase"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// VendorSeed vendedor a crear.
type VendorSeed struct {
	Name     string
	Email    string
	Password string
	Sector   string
}

// DefaultVendors los tres puntos de impresión de demostración.
func DefaultVendors() []VendorSeed {
	return []VendorSeed{
		{Name: "Rajesh Print Shop", Email: "rajesh@sec128.jprint.com", Password: "password123", Sector: "SEC-128"},
		{Name: "Meera Print Services", Email: "meera@sec62.jprint.com", Password: "password123", Sector: "SEC-62"},
		{Name: "Amit Print Center", Email: "amit@main.jprint.com", Password: "password123", Sector: "MAIN-CAMPUS"},
	}
}

// Result resumen de la ejecución.
type Result struct {
	VendorsCreated int
	VendorsSkipped int
	OrdersCreated  int
}

// Seeder orquesta la carga.
type Seeder struct {
	vendors  *usecase.VendorUseCase
	create   *orders.CreateOrderUseCase
	status   *orders.UpdateStatusUseCase
	payments *payments.PaymentUseCase
	log      zerolog.Logger
	now      func() time.Time
}

// NewSeeder construye el seeder.
func NewSeeder(
	vendors *usecase.VendorUseCase,
	create *orders.CreateOrderUseCase,
	status *orders.UpdateStatusUseCase,
	pay *payments.PaymentUseCase,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{vendors: vendors, create: create, status: status, payments: pay, log: log, now: time.Now}
}

type sampleStudent struct {
	name, emailPrefix, phone, rollPrefix, department string
}

var sampleStudents = []sampleStudent{
	{"Rahul Kumar", "rahul", "+91 98765 43210", "CS", "Computer Science"},
	{"Priya Sharma", "priya", "+91 98765 43211", "EC", "Electronics"},
	{"Amit Singh", "amit", "+91 98765 43212", "ME", "Mechanical"},
}

// Run crea los vendedores; un email ya registrado se omite (no es error).
// Con withOrders crea tres pedidos por vendedor nuevo, con el pago COMPLETED y
// los estados PENDING, ACCEPTED y PRINTING.
func (s *Seeder) Run(ctx context.Context, vendors []VendorSeed, withOrders bool) (*Result, error) {
	res := &Result{}
	for i, v := range vendors {
		profile, err := s.vendors.Create(ctx, dto.CreateVendorRequest{
			Name: v.Name, Email: v.Email, Password: v.Password, Sector: v.Sector,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			s.log.Info().Str("email", v.Email).Msg("vendedor ya existe, se omite")
			res.VendorsSkipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("seed: vendedor %s: %w", v.Email, err)
		}
		res.VendorsCreated++
		s.log.Info().Str("vendor", profile.Name).Str("sector", profile.Sector).Msg("vendedor creado")

		if !withOrders {
			continue
		}
		n, err := s.sampleOrders(ctx, profile.ID, i+1)
		res.OrdersCreated += n
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func (s *Seeder) sampleOrders(ctx context.Context, vendorID string, suffix int) (int, error) {
	methods := []string{entity.PaymentMethodUPI, entity.PaymentMethodCash, entity.PaymentMethodCard}
	statuses := []string{"", entity.OrderStatusAccepted, entity.OrderStatusPrinting}

	created := 0
	for j, st := range sampleStudents {
		due := s.now().AddDate(0, 0, j+1)
		in := dto.CreateOrderRequest{
			Student: dto.StudentInput{
				Name:       st.name,
				Email:      fmt.Sprintf("%s%d@student.edu", st.emailPrefix, suffix),
				Phone:      st.phone,
				RollNumber: fmt.Sprintf("%s202100%d", st.rollPrefix, suffix),
				Department: st.department,
			},
			FileName:         fmt.Sprintf("assignment_%d.pdf", j+1),
			OriginalFileName: fmt.Sprintf("Assignment_%d.pdf", j+1),
			FileSize:         2048576,
			PageCount:        10 + j*5,
			Copies:           1 + j,
			ColorPrint:       j%2 == 0,
			Duplex:           true,
			PaperSize:        entity.PaperA4,
			Priority:         entity.PriorityNormal,
			DueDate:          &due,
			PaymentMethod:    methods[j],
		}
		if j == 0 {
			in.Notes = "Please print on both sides"
		}
		if j == 2 {
			in.Priority = entity.PriorityHigh
		}

		o, err := s.create.Create(ctx, vendorID, in)
		if err != nil {
			return created, fmt.Errorf("seed: pedido %d: %w", j+1, err)
		}
		created++
		if _, err := s.payments.UpdateStatus(ctx, vendorID, o.ID, dto.UpdatePaymentStatusRequest{Status: entity.PaymentStatusCompleted}); err != nil {
			return created, fmt.Errorf("seed: pago %s: %w", o.OrderNumber, err)
		}
		if statuses[j] != "" {
			if _, err := s.status.UpdateStatus(ctx, vendorID, o.ID, dto.UpdateOrderStatusRequest{Status: statuses[j]}); err != nil {
				return created, fmt.Errorf("seed: estado %s: %w", o.OrderNumber, err)
			}
		}
		s.log.Info().Str("order_number", o.OrderNumber).Msg("pedido de ejemplo creado")
	}
	return created, nil
}
