// Package orders contiene los casos de uso del ciclo de vida de un pedido de impresión:
// alta, cambio de estado, consultas y comprobante descargable.
package orders

import (
	"context"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Cambio de estado + venta, y pedido + pago, se confirman juntos o no se confirman.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		paymentRepo repository.PaymentRepository,
		studentRepo repository.StudentRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptRenderer genera el comprobante de un pedido en un formato concreto.
type ReceiptRenderer interface {
	Render(ctx context.Context, order *entity.OrderWithRelations) ([]byte, error)
}
