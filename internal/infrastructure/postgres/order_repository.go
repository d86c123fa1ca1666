package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// orderSelect pedido + estudiante + pago (LEFT JOIN: el pago puede no existir).
const orderSelect = `
	SELECT o.id, o.order_number, o.student_id, o.vendor_id, o.file_name, o.original_file_name,
	       o.file_size, COALESCE(o.file_url, ''), o.page_count, o.copies, o.color_print, o.duplex,
	       o.paper_size, o.total_price, o.status, o.priority, COALESCE(o.notes, ''), o.due_date,
	       o.completed_at, o.created_at, o.updated_at,
	       s.id, s.name, s.email, COALESCE(s.phone, ''), COALESCE(s.roll_number, ''),
	       COALESCE(s.department, ''), s.created_at,
	       p.id::text, p.amount, p.method, p.transaction_id, p.status, p.paid_at, p.created_at, p.updated_at
	FROM print_orders o
	JOIN students s ON s.id = o.student_id
	LEFT JOIN payments p ON p.print_order_id = o.id`

// Create persiste un nuevo pedido. Número de pedido repetido → ErrDuplicate.
func (r *OrderRepo) Create(ctx context.Context, o *entity.PrintOrder) error {
	query := `
		INSERT INTO print_orders (
			id, order_number, student_id, vendor_id, file_name, original_file_name, file_size, file_url,
			page_count, copies, color_print, duplex, paper_size, total_price, status, priority, notes,
			due_date, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.OrderNumber, o.StudentID, o.VendorID, o.FileName, o.OriginalFileName, o.FileSize, nullIfEmpty(o.FileURL),
		o.PageCount, o.Copies, o.ColorPrint, o.Duplex, o.PaperSize, o.TotalPrice, o.Status, o.Priority, nullIfEmpty(o.Notes),
		o.DueDate, o.CompletedAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert print order: %w", err)
	}
	return nil
}

// GetForVendor obtiene el pedido si pertenece al vendedor.
func (r *OrderRepo) GetForVendor(ctx context.Context, id, vendorID string) (*entity.OrderWithRelations, error) {
	return r.findOne(ctx, orderSelect+` WHERE o.id = $1 AND o.vendor_id = $2`, id, vendorID)
}

// LockForVendor igual que GetForVendor con FOR UPDATE sobre la fila del pedido.
// Solo tiene efecto dentro de una transacción (TxRunner).
func (r *OrderRepo) LockForVendor(ctx context.Context, id, vendorID string) (*entity.OrderWithRelations, error) {
	return r.findOne(ctx, orderSelect+` WHERE o.id = $1 AND o.vendor_id = $2 FOR UPDATE OF o`, id, vendorID)
}

// UpdateStatus sobrescribe el estado; completed_at solo se toca si completedAt no es nil.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time, updatedAt time.Time) error {
	query := `
		UPDATE print_orders
		SET status = $2, completed_at = COALESCE($3, completed_at), updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status, completedAt, updatedAt)
	if err != nil {
		return fmt.Errorf("update print order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByVendor número de pedidos del vendedor.
func (r *OrderRepo) CountByVendor(ctx context.Context, vendorID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM print_orders WHERE vendor_id = $1`, vendorID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count print orders: %w", err)
	}
	return n, nil
}

// ListByVendor últimos pedidos del vendedor.
func (r *OrderRepo) ListByVendor(ctx context.Context, vendorID string, limit int) ([]*entity.OrderWithRelations, error) {
	return r.findMany(ctx, orderSelect+`
		WHERE o.vendor_id = $1
		ORDER BY o.created_at DESC
		LIMIT $2`, vendorID, limit)
}

// ListCreatedBetween pedidos creados en [start, end).
func (r *OrderRepo) ListCreatedBetween(ctx context.Context, vendorID string, start, end time.Time) ([]*entity.OrderWithRelations, error) {
	return r.findMany(ctx, orderSelect+`
		WHERE o.vendor_id = $1 AND o.created_at >= $2 AND o.created_at < $3
		ORDER BY o.created_at DESC`, vendorID, start, end)
}

// ListCompletedBetween pedidos COMPLETED con hora de completado en [start, end).
func (r *OrderRepo) ListCompletedBetween(ctx context.Context, vendorID string, start, end time.Time) ([]*entity.OrderWithRelations, error) {
	return r.findMany(ctx, orderSelect+`
		WHERE o.vendor_id = $1 AND o.status = 'COMPLETED'
		  AND COALESCE(o.completed_at, o.updated_at) >= $2
		  AND COALESCE(o.completed_at, o.updated_at) < $3
		ORDER BY COALESCE(o.completed_at, o.updated_at) DESC`, vendorID, start, end)
}

func (r *OrderRepo) findOne(ctx context.Context, query string, args ...any) (*entity.OrderWithRelations, error) {
	out, err := scanOrder(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get print order: %w", err)
	}
	return out, nil
}

func (r *OrderRepo) findMany(ctx context.Context, query string, args ...any) ([]*entity.OrderWithRelations, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list print orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderWithRelations
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan print order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// scanOrder lee una fila de orderSelect. Las columnas del pago llegan NULL si no hay pago.
func scanOrder(row pgx.Row) (*entity.OrderWithRelations, error) {
	var (
		o entity.PrintOrder
		s entity.Student

		payID, payMethod, payTxn, payStatus *string
		payAmount                           decimal.NullDecimal
		payPaidAt, payCreated, payUpdated   *time.Time
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.StudentID, &o.VendorID, &o.FileName, &o.OriginalFileName,
		&o.FileSize, &o.FileURL, &o.PageCount, &o.Copies, &o.ColorPrint, &o.Duplex,
		&o.PaperSize, &o.TotalPrice, &o.Status, &o.Priority, &o.Notes, &o.DueDate,
		&o.CompletedAt, &o.CreatedAt, &o.UpdatedAt,
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.RollNumber,
		&s.Department, &s.CreatedAt,
		&payID, &payAmount, &payMethod, &payTxn, &payStatus, &payPaidAt, &payCreated, &payUpdated,
	)
	if err != nil {
		return nil, err
	}
	out := &entity.OrderWithRelations{Order: &o, Student: &s}
	if payID != nil {
		p := &entity.Payment{
			ID:           *payID,
			PrintOrderID: o.ID,
			StudentID:    o.StudentID,
			Amount:       payAmount.Decimal,
			PaidAt:       payPaidAt,
		}
		if payMethod != nil {
			p.Method = *payMethod
		}
		if payTxn != nil {
			p.TransactionID = *payTxn
		}
		if payStatus != nil {
			p.Status = *payStatus
		}
		if payCreated != nil {
			p.CreatedAt = *payCreated
		}
		if payUpdated != nil {
			p.UpdatedAt = *payUpdated
		}
		out.Payment = p
	}
	return out, nil
}
