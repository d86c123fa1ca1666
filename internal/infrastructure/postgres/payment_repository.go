package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste el pago. Un segundo pago para el mismo pedido → ErrDuplicate.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, print_order_id, student_id, amount, method, transaction_id, status, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.PrintOrderID, p.StudentID, p.Amount, p.Method, p.TransactionID, p.Status, p.PaidAt,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByOrderID obtiene el pago de un pedido.
func (r *PaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	query := `
		SELECT id, print_order_id, student_id, amount, method, COALESCE(transaction_id, ''), status, paid_at, created_at, updated_at
		FROM payments WHERE print_order_id = $1`
	var p entity.Payment
	err := r.q.QueryRow(ctx, query, orderID).Scan(
		&p.ID, &p.PrintOrderID, &p.StudentID, &p.Amount, &p.Method, &p.TransactionID, &p.Status, &p.PaidAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// UpdateStatus escribe estado y paid_at (nil lo limpia).
func (r *PaymentRepo) UpdateStatus(ctx context.Context, id, status string, paidAt *time.Time, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE payments SET status = $2, paid_at = $3, updated_at = $4 WHERE id = $1`,
		id, status, paidAt, updatedAt)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}
