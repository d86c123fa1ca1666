// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Se usa con DB_DRIVER=memory (demos, desarrollo sin PostgreSQL) y en los tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/jprint-vendor-api/internal/application/orders"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

var _ orders.TxRunner = (*Store)(nil)

// Store datos en memoria. Los repositorios guardan copias: modificar una entidad
// devuelta no altera el store.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex // una transacción a la vez; equivale al FOR UPDATE

	vendors  map[string]entity.Vendor
	students map[string]entity.Student
	orders   map[string]entity.PrintOrder
	payments map[string]entity.Payment
	sales    map[string]entity.Sale
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		vendors:  map[string]entity.Vendor{},
		students: map[string]entity.Student{},
		orders:   map[string]entity.PrintOrder{},
		payments: map[string]entity.Payment{},
		sales:    map[string]entity.Sale{},
	}
}

// Vendors repositorio de vendedores.
func (s *Store) Vendors() *VendorRepository { return &VendorRepository{s: s} }

// Students repositorio de estudiantes.
func (s *Store) Students() *StudentRepository { return &StudentRepository{s: s} }

// Orders repositorio de pedidos.
func (s *Store) Orders() *OrderRepository { return &OrderRepository{s: s} }

// Payments repositorio de pagos.
func (s *Store) Payments() *PaymentRepository { return &PaymentRepository{s: s} }

// Sales repositorio de ventas.
func (s *Store) Sales() *SaleRepository { return &SaleRepository{s: s} }

// SalesForOrder ventas registradas para un pedido.
func (s *Store) SalesForOrder(orderID string) []entity.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Sale
	for _, sale := range s.sales {
		if sale.PrintOrderID == orderID {
			out = append(out, sale)
		}
	}
	return out
}

// RunOrders ejecuta fn con los repositorios del store. Si fn falla se restaura
// el estado previo a la transacción.
func (s *Store) RunOrders(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	studentRepo repository.StudentRepository,
	saleRepo repository.SaleRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(s.Orders(), s.Payments(), s.Students(), s.Sales()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	vendors  map[string]entity.Vendor
	students map[string]entity.Student
	orders   map[string]entity.PrintOrder
	payments map[string]entity.Payment
	sales    map[string]entity.Sale
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		vendors:  maps.Clone(s.vendors),
		students: maps.Clone(s.students),
		orders:   maps.Clone(s.orders),
		payments: maps.Clone(s.payments),
		sales:    maps.Clone(s.sales),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors = snap.vendors
	s.students = snap.students
	s.orders = snap.orders
	s.payments = snap.payments
	s.sales = snap.sales
}

// withRelations arma la vista del pedido. Requiere s.mu tomado.
func (s *Store) withRelations(o entity.PrintOrder) *entity.OrderWithRelations {
	out := &entity.OrderWithRelations{Order: &o}
	if st, ok := s.students[o.StudentID]; ok {
		out.Student = &st
	}
	for _, p := range s.payments {
		if p.PrintOrderID == o.ID {
			p := p
			out.Payment = &p
			break
		}
	}
	return out
}
