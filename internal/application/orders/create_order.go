package orders

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/order"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/pricing"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

// CreateOrderUseCase registra un pedido nuevo con su pago pendiente.
type CreateOrderUseCase struct {
	tx         TxRunner
	vendorRepo repository.VendorRepository
	calc       *pricing.Calculator
	events     ports.OrderEvents
	log        zerolog.Logger
	now        func() time.Time
}

// NewCreateOrderUseCase construye el caso de uso. events puede ser nil.
func NewCreateOrderUseCase(tx TxRunner, vendorRepo repository.VendorRepository, calc *pricing.Calculator, events ports.OrderEvents, log zerolog.Logger) *CreateOrderUseCase {
	if events == nil {
		events = ports.NopOrderEvents{}
	}
	return &CreateOrderUseCase{tx: tx, vendorRepo: vendorRepo, calc: calc, events: events, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *CreateOrderUseCase) WithClock(now func() time.Time) *CreateOrderUseCase {
	uc.now = now
	return uc
}

// Create valida la entrada, calcula el precio y persiste en una transacción:
// upsert del estudiante por email, número de pedido, pedido PENDING y pago PENDING.
func (uc *CreateOrderUseCase) Create(ctx context.Context, vendorID string, in dto.CreateOrderRequest) (*dto.OrderSummary, error) {
	in = withDefaults(in)
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	quote, err := uc.calc.Quote(pricing.Job{
		Pages:      in.PageCount,
		Copies:     in.Copies,
		ColorPrint: in.ColorPrint,
		Duplex:     in.Duplex,
		PaperSize:  in.PaperSize,
		Binding:    in.Binding,
		Lamination: in.Lamination,
	})
	if err != nil {
		return nil, err
	}

	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("buscar vendedor: %w", err)
	}
	if vendor == nil || !vendor.IsActive {
		return nil, domain.ErrUnauthorized
	}

	now := uc.now()
	var result *entity.OrderWithRelations
	err = uc.tx.RunOrders(ctx, func(
		orderRepo repository.OrderRepository,
		paymentRepo repository.PaymentRepository,
		studentRepo repository.StudentRepository,
		_ repository.SaleRepository,
	) error {
		student, err := studentRepo.UpsertByEmail(ctx, &entity.Student{
			ID:         uuid.New().String(),
			Name:       strings.TrimSpace(in.Student.Name),
			Email:      strings.TrimSpace(in.Student.Email),
			Phone:      in.Student.Phone,
			RollNumber: in.Student.RollNumber,
			Department: in.Student.Department,
			CreatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("upsert estudiante: %w", err)
		}

		count, err := orderRepo.CountByVendor(ctx, vendorID)
		if err != nil {
			return fmt.Errorf("contar pedidos: %w", err)
		}
		o := &entity.PrintOrder{
			ID:               uuid.New().String(),
			OrderNumber:      order.Number(vendor.Sector, count+1),
			StudentID:        student.ID,
			VendorID:         vendorID,
			FileName:         in.FileName,
			OriginalFileName: in.OriginalFileName,
			FileSize:         in.FileSize,
			FileURL:          in.FileURL,
			PageCount:        in.PageCount,
			Copies:           in.Copies,
			ColorPrint:       in.ColorPrint,
			Duplex:           in.Duplex,
			PaperSize:        in.PaperSize,
			TotalPrice:       quote.Total,
			Status:           entity.OrderStatusPending,
			Priority:         in.Priority,
			Notes:            in.Notes,
			DueDate:          in.DueDate,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			return fmt.Errorf("crear pedido: %w", err)
		}

		p := &entity.Payment{
			ID:            uuid.New().String(),
			PrintOrderID:  o.ID,
			StudentID:     student.ID,
			Amount:        quote.Total,
			Method:        in.PaymentMethod,
			TransactionID: transactionID(now),
			Status:        entity.PaymentStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := paymentRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("crear pago: %w", err)
		}
		result = &entity.OrderWithRelations{Order: o, Student: student, Payment: p}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.events.OrderCreated(vendorID)
	uc.log.Info().
		Str("order_id", result.Order.ID).
		Str("order_number", result.Order.OrderNumber).
		Str("vendor_id", vendorID).
		Str("total", result.Order.TotalPrice.StringFixed(2)).
		Msg("pedido creado")

	summary := toOrderSummary(result)
	return &summary, nil
}

func withDefaults(in dto.CreateOrderRequest) dto.CreateOrderRequest {
	if in.PaperSize == "" {
		in.PaperSize = entity.PaperA4
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityNormal
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentMethodCash
	}
	if in.OriginalFileName == "" {
		in.OriginalFileName = in.FileName
	}
	return in
}

func validateCreate(in dto.CreateOrderRequest) error {
	if strings.TrimSpace(in.Student.Name) == "" || strings.TrimSpace(in.Student.Email) == "" {
		return fmt.Errorf("%w: nombre y email del estudiante son obligatorios", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.FileName) == "" {
		return fmt.Errorf("%w: fileName es obligatorio", domain.ErrInvalidInput)
	}
	if in.FileSize < 0 {
		return fmt.Errorf("%w: fileSize negativo", domain.ErrInvalidInput)
	}
	switch in.Priority {
	case entity.PriorityLow, entity.PriorityNormal, entity.PriorityHigh, entity.PriorityUrgent:
	default:
		return fmt.Errorf("%w: priority %q", domain.ErrInvalidInput, in.Priority)
	}
	switch in.PaymentMethod {
	case entity.PaymentMethodCash, entity.PaymentMethodUPI, entity.PaymentMethodCard:
	default:
		return fmt.Errorf("%w: paymentMethod %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	return nil
}

// transactionID referencia interna del pago: TXN + milisegundos unix + sufijo aleatorio.
func transactionID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return "TXN" + strconv.FormatInt(now.UnixMilli(), 10) + suffix
}
