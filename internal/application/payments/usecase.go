// Package payments contiene el caso de uso de cambio de estado del pago de un pedido.
package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

// PaymentUseCase actualiza el estado del pago. No toca el estado del pedido ni las ventas.
type PaymentUseCase struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	events      ports.OrderEvents
	log         zerolog.Logger
	now         func() time.Time
}

// NewPaymentUseCase construye el caso de uso. events puede ser nil.
func NewPaymentUseCase(orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository, events ports.OrderEvents, log zerolog.Logger) *PaymentUseCase {
	if events == nil {
		events = ports.NopOrderEvents{}
	}
	return &PaymentUseCase{orderRepo: orderRepo, paymentRepo: paymentRepo, events: events, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *PaymentUseCase) WithClock(now func() time.Time) *PaymentUseCase {
	uc.now = now
	return uc
}

// UpdateStatus cambia el estado del pago del pedido orderID.
// paidAt queda en now para COMPLETED y se limpia para cualquier otro estado.
func (uc *PaymentUseCase) UpdateStatus(ctx context.Context, vendorID, orderID string, in dto.UpdatePaymentStatusRequest) (*dto.PaymentStatusView, error) {
	switch in.Status {
	case entity.PaymentStatusCompleted, entity.PaymentStatusPending, entity.PaymentStatusFailed:
	default:
		return nil, fmt.Errorf("%w: estado de pago %q", domain.ErrInvalidInput, in.Status)
	}

	o, err := uc.orderRepo.GetForVendor(ctx, orderID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	payment, err := uc.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("buscar pago: %w", err)
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}

	now := uc.now()
	var paidAt *time.Time
	if in.Status == entity.PaymentStatusCompleted {
		paidAt = &now
	}
	if err := uc.paymentRepo.UpdateStatus(ctx, payment.ID, in.Status, paidAt, now); err != nil {
		return nil, fmt.Errorf("actualizar pago: %w", err)
	}

	uc.events.PaymentStatusChanged(in.Status)
	uc.log.Info().
		Str("payment_id", payment.ID).
		Str("order_id", orderID).
		Str("status", in.Status).
		Msg("estado de pago actualizado")

	return &dto.PaymentStatusView{ID: payment.ID, Status: in.Status, PaidAt: paidAt}, nil
}
