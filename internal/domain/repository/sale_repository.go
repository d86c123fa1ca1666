package repository

import (
	"context"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// SaleRepository puerto de escritura de ventas desnormalizadas.
type SaleRepository interface {
	// Create inserta la venta. Si el pedido ya tiene una venta devuelve domain.ErrDuplicate
	// sin abortar la transacción en curso.
	Create(ctx context.Context, sale *entity.Sale) error
}
