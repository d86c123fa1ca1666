package repository

import (
	"context"
	"time"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para PrintOrder.
// Todas las lecturas filtran por vendorID: un pedido ajeno se comporta como inexistente.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.PrintOrder) error

	// GetForVendor devuelve el pedido con estudiante y pago, o (nil, nil).
	GetForVendor(ctx context.Context, id, vendorID string) (*entity.OrderWithRelations, error)

	// LockForVendor igual que GetForVendor pero bloquea la fila hasta el fin de la transacción.
	LockForVendor(ctx context.Context, id, vendorID string) (*entity.OrderWithRelations, error)

	// UpdateStatus sobrescribe estado y updated_at; completedAt solo se escribe si no es nil.
	UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time, updatedAt time.Time) error

	// CountByVendor número de pedidos del vendedor (secuencia del número de pedido).
	CountByVendor(ctx context.Context, vendorID string) (int, error)

	// ListByVendor últimos `limit` pedidos, más recientes primero.
	ListByVendor(ctx context.Context, vendorID string, limit int) ([]*entity.OrderWithRelations, error)

	// ListCreatedBetween pedidos creados en [start, end), más recientes primero.
	ListCreatedBetween(ctx context.Context, vendorID string, start, end time.Time) ([]*entity.OrderWithRelations, error)

	// ListCompletedBetween pedidos COMPLETED cuya hora de completado
	// (completed_at, o updated_at si es nula) cae en [start, end), más recientes primero.
	ListCompletedBetween(ctx context.Context, vendorID string, start, end time.Time) ([]*entity.OrderWithRelations, error)
}
