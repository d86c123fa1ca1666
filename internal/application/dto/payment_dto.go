package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdatePaymentStatusRequest entrada de PUT /api/payments/:id.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

// PaymentStatusView pago tras la actualización.
type PaymentStatusView struct {
	ID     string     `json:"id"`
	Status string     `json:"status"`
	PaidAt *time.Time `json:"paidAt"`
}

// PaymentMutationResponse cuerpo de PUT /api/payments/:id.
type PaymentMutationResponse struct {
	Success bool              `json:"success"`
	Payment PaymentStatusView `json:"payment"`
}

// PaymentView pago dentro del detalle de pedido.
type PaymentView struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transactionId"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paidAt"`
}
