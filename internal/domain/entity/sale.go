package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatusCompleted único estado que se escribe hoy.
const SaleStatusCompleted = "COMPLETED"

// Sale registro desnormalizado de ingresos: una fila por pedido completado y pagado.
// El reporte de ventas no lo lee; se calcula desde PrintOrder + Payment.
type Sale struct {
	ID           string
	VendorID     string
	PrintOrderID string
	TotalOrders  int
	TotalRevenue decimal.Decimal
	Status       string
	CreatedAt    time.Time
}
