package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

var (
	_ repository.VendorRepository  = (*VendorRepository)(nil)
	_ repository.StudentRepository = (*StudentRepository)(nil)
	_ repository.OrderRepository   = (*OrderRepository)(nil)
	_ repository.PaymentRepository = (*PaymentRepository)(nil)
	_ repository.SaleRepository    = (*SaleRepository)(nil)
)

// ── Vendor ────────────────────────────────────────────────────────────────────

// VendorRepository implementa repository.VendorRepository.
type VendorRepository struct{ s *Store }

func (r *VendorRepository) Create(_ context.Context, v *entity.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.vendors {
		if strings.EqualFold(existing.Email, v.Email) {
			return domain.ErrDuplicate
		}
	}
	r.s.vendors[v.ID] = *v
	return nil
}

func (r *VendorRepository) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.vendors[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *VendorRepository) GetByEmail(_ context.Context, email string) (*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, v := range r.s.vendors {
		if strings.EqualFold(v.Email, email) {
			return &v, nil
		}
	}
	return nil, nil
}

// ── Student ───────────────────────────────────────────────────────────────────

// StudentRepository implementa repository.StudentRepository.
type StudentRepository struct{ s *Store }

func (r *StudentRepository) UpsertByEmail(_ context.Context, st *entity.Student) (*entity.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.students {
		if strings.EqualFold(existing.Email, st.Email) {
			return &existing, nil
		}
	}
	r.s.students[st.ID] = *st
	out := *st
	return &out, nil
}

// ── PrintOrder ────────────────────────────────────────────────────────────────

// OrderRepository implementa repository.OrderRepository.
type OrderRepository struct{ s *Store }

func (r *OrderRepository) Create(_ context.Context, o *entity.PrintOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.orders {
		if existing.VendorID == o.VendorID && existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.orders[o.ID] = *o
	return nil
}

func (r *OrderRepository) GetForVendor(_ context.Context, id, vendorID string) (*entity.OrderWithRelations, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok || o.VendorID != vendorID {
		return nil, nil
	}
	return r.s.withRelations(o), nil
}

// LockForVendor el bloqueo lo da Store.RunOrders; aquí es una lectura normal.
func (r *OrderRepository) LockForVendor(ctx context.Context, id, vendorID string) (*entity.OrderWithRelations, error) {
	return r.GetForVendor(ctx, id, vendorID)
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id, status string, completedAt *time.Time, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	if completedAt != nil {
		t := *completedAt
		o.CompletedAt = &t
	}
	r.s.orders[id] = o
	return nil
}

func (r *OrderRepository) CountByVendor(_ context.Context, vendorID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, o := range r.s.orders {
		if o.VendorID == vendorID {
			n++
		}
	}
	return n, nil
}

func (r *OrderRepository) ListByVendor(_ context.Context, vendorID string, limit int) ([]*entity.OrderWithRelations, error) {
	out := r.list(vendorID, func(entity.PrintOrder) bool { return true }, createdAt)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *OrderRepository) ListCreatedBetween(_ context.Context, vendorID string, start, end time.Time) ([]*entity.OrderWithRelations, error) {
	return r.list(vendorID, func(o entity.PrintOrder) bool {
		return inWindow(o.CreatedAt, start, end)
	}, createdAt), nil
}

func (r *OrderRepository) ListCompletedBetween(_ context.Context, vendorID string, start, end time.Time) ([]*entity.OrderWithRelations, error) {
	return r.list(vendorID, func(o entity.PrintOrder) bool {
		return o.Status == entity.OrderStatusCompleted && inWindow(completionTime(o), start, end)
	}, completionTime), nil
}

// list filtra por vendedor y keep, ordenando por key descendente.
func (r *OrderRepository) list(vendorID string, keep func(entity.PrintOrder) bool, key func(entity.PrintOrder) time.Time) []*entity.OrderWithRelations {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var selected []entity.PrintOrder
	for _, o := range r.s.orders {
		if o.VendorID == vendorID && keep(o) {
			selected = append(selected, o)
		}
	}
	slices.SortFunc(selected, func(a, b entity.PrintOrder) int {
		return key(b).Compare(key(a))
	})
	out := make([]*entity.OrderWithRelations, 0, len(selected))
	for _, o := range selected {
		out = append(out, r.s.withRelations(o))
	}
	return out
}

func createdAt(o entity.PrintOrder) time.Time { return o.CreatedAt }

func completionTime(o entity.PrintOrder) time.Time {
	if o.CompletedAt != nil {
		return *o.CompletedAt
	}
	return o.UpdatedAt
}

// inWindow t ∈ [start, end).
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// ── Payment ───────────────────────────────────────────────────────────────────

// PaymentRepository implementa repository.PaymentRepository.
type PaymentRepository struct{ s *Store }

func (r *PaymentRepository) Create(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.payments {
		if existing.PrintOrderID == p.PrintOrderID {
			return domain.ErrDuplicate
		}
	}
	r.s.payments[p.ID] = *p
	return nil
}

func (r *PaymentRepository) GetByOrderID(_ context.Context, orderID string) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.payments {
		if p.PrintOrderID == orderID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PaymentRepository) UpdateStatus(_ context.Context, id, status string, paidAt *time.Time, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[id]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	p.Status = status
	p.PaidAt = nil
	if paidAt != nil {
		t := *paidAt
		p.PaidAt = &t
	}
	p.UpdatedAt = updatedAt
	r.s.payments[id] = p
	return nil
}

// ── Sale ──────────────────────────────────────────────────────────────────────

// SaleRepository implementa repository.SaleRepository.
type SaleRepository struct{ s *Store }

func (r *SaleRepository) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.sales {
		if existing.PrintOrderID == sale.PrintOrderID {
			return domain.ErrDuplicate
		}
	}
	r.s.sales[sale.ID] = *sale
	return nil
}
