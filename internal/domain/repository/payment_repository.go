package repository

import (
	"context"
	"time"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error)
	// UpdateStatus escribe estado y paid_at tal cual (nil limpia la fecha).
	UpdateStatus(ctx context.Context, id, status string, paidAt *time.Time, updatedAt time.Time) error
}
