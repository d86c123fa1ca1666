package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

// Métodos de pago.
const (
	PaymentMethodCash = "CASH"
	PaymentMethodUPI  = "UPI"
	PaymentMethodCard = "CARD"
)

// Payment pago de un pedido (uno a uno con PrintOrder).
type Payment struct {
	ID            string
	PrintOrderID  string
	StudentID     string
	Amount        decimal.Decimal
	Method        string
	TransactionID string
	Status        string
	PaidAt        *time.Time // nil salvo en COMPLETED
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
