package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/order"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

// UpdateStatusUseCase cambia el estado de un pedido del vendedor.
//
// Todo ocurre en una transacción:
//  1. SELECT ... FOR UPDATE del pedido (filtrado por vendedor)
//  2. política de transiciones
//  3. UPDATE de estado (y completed_at al entrar en COMPLETED)
//  4. INSERT de la venta si entra en COMPLETED con el pago COMPLETED
type UpdateStatusUseCase struct {
	tx     TxRunner
	policy order.TransitionPolicy
	events ports.OrderEvents
	log    zerolog.Logger
	now    func() time.Time
}

// NewUpdateStatusUseCase construye el caso de uso. events puede ser nil.
func NewUpdateStatusUseCase(tx TxRunner, policy order.TransitionPolicy, events ports.OrderEvents, log zerolog.Logger) *UpdateStatusUseCase {
	if events == nil {
		events = ports.NopOrderEvents{}
	}
	return &UpdateStatusUseCase{tx: tx, policy: policy, events: events, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UpdateStatusUseCase) WithClock(now func() time.Time) *UpdateStatusUseCase {
	uc.now = now
	return uc
}

// UpdateStatus aplica el nuevo estado. Errores: ErrInvalidInput (estado destino),
// ErrNotFound (inexistente o de otro vendedor), ErrInvalidTransition (modo estricto).
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, vendorID, orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderSummary, error) {
	if !order.IsUpdateTarget(in.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}

	var (
		result *entity.OrderWithRelations
		from   string
		sale   *entity.Sale
	)
	err := uc.tx.RunOrders(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.PaymentRepository,
		_ repository.StudentRepository,
		saleRepo repository.SaleRepository,
	) error {
		current, err := orderRepo.LockForVendor(ctx, orderID, vendorID)
		if err != nil {
			return fmt.Errorf("bloquear pedido: %w", err)
		}
		if current == nil {
			return domain.ErrNotFound
		}
		from = current.Order.Status
		if err := uc.policy.Check(from, in.Status); err != nil {
			return err
		}

		now := uc.now()
		var completedAt *time.Time
		if order.EntersCompleted(from, in.Status) {
			completedAt = &now
		}
		if err := orderRepo.UpdateStatus(ctx, orderID, in.Status, completedAt, now); err != nil {
			return fmt.Errorf("actualizar estado: %w", err)
		}
		current.Order.Status = in.Status
		current.Order.UpdatedAt = now
		if completedAt != nil {
			current.Order.CompletedAt = completedAt
		}

		// Cada COMPLETED con pago COMPLETED intenta registrar la venta; el índice
		// único por pedido la deja en una sola.
		if in.Status == entity.OrderStatusCompleted && current.PaymentStatus() == entity.PaymentStatusCompleted {
			s := &entity.Sale{
				ID:           uuid.New().String(),
				VendorID:     vendorID,
				PrintOrderID: orderID,
				TotalOrders:  1,
				TotalRevenue: current.Order.TotalPrice,
				Status:       entity.SaleStatusCompleted,
				CreatedAt:    now,
			}
			switch err := saleRepo.Create(ctx, s); {
			case errors.Is(err, domain.ErrDuplicate):
				uc.log.Debug().Str("order_id", orderID).Msg("el pedido ya tenía venta registrada")
			case err != nil:
				return fmt.Errorf("registrar venta: %w", err)
			default:
				sale = s
			}
		}
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.events.OrderStatusChanged(from, in.Status)
	if sale != nil {
		uc.events.SaleRecorded(sale.TotalRevenue)
	}
	uc.log.Info().
		Str("order_id", orderID).
		Str("vendor_id", vendorID).
		Str("from", from).
		Str("to", in.Status).
		Bool("sale", sale != nil).
		Msg("estado de pedido actualizado")

	summary := toOrderSummary(result)
	return &summary, nil
}

func toOrderSummary(o *entity.OrderWithRelations) dto.OrderSummary {
	return dto.OrderSummary{
		ID:            o.Order.ID,
		OrderNumber:   o.Order.OrderNumber,
		Status:        o.Order.Status,
		StudentName:   o.StudentName(),
		FileName:      o.Order.FileName,
		Copies:        o.Order.Copies,
		Pages:         o.Order.PageCount,
		Amount:        o.Order.TotalPrice,
		PaymentStatus: o.PaymentStatus(),
	}
}
