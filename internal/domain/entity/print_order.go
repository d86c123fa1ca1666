package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido de impresión.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusAccepted  = "ACCEPTED"
	OrderStatusPrinting  = "PRINTING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Prioridades de pedido.
const (
	PriorityLow    = "LOW"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Tamaños de papel soportados.
const (
	PaperA4     = "A4"
	PaperA3     = "A3"
	PaperLetter = "LETTER"
	PaperLegal  = "LEGAL"
)

// PrintOrder pedido de impresión. Pertenece a un Student y a un Vendor.
type PrintOrder struct {
	ID               string
	OrderNumber      string // JPT + sector sin guiones + secuencia, ej: JPTSEC12801
	StudentID        string
	VendorID         string
	FileName         string
	OriginalFileName string
	FileSize         int64 // bytes
	FileURL          string
	PageCount        int
	Copies           int
	ColorPrint       bool
	Duplex           bool
	PaperSize        string
	TotalPrice       decimal.Decimal
	Status           string
	Priority         string
	Notes            string
	DueDate          *time.Time
	CompletedAt      *time.Time // se marca al pasar a COMPLETED
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TotalPages páginas impresas: pageCount × copies.
func (o *PrintOrder) TotalPages() int {
	return o.PageCount * o.Copies
}

// OrderWithRelations pedido con su estudiante y pago (si existe) para las vistas.
type OrderWithRelations struct {
	Order   *PrintOrder
	Student *Student
	Payment *Payment // nil si el pedido no tiene pago
}

// StudentName nombre del estudiante o cadena vacía.
func (o *OrderWithRelations) StudentName() string {
	if o.Student == nil {
		return ""
	}
	return o.Student.Name
}

// PaymentStatus estado del pago; PENDING si el pedido no tiene pago.
func (o *OrderWithRelations) PaymentStatus() string {
	if o.Payment == nil {
		return PaymentStatusPending
	}
	return o.Payment.Status
}

// PaymentMethod método del pago; CASH si no hay pago o no tiene método.
func (o *OrderWithRelations) PaymentMethod() string {
	if o.Payment == nil || o.Payment.Method == "" {
		return PaymentMethodCash
	}
	return o.Payment.Method
}
