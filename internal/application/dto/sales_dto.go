package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary totales del día.
type SalesSummary struct {
	TotalOrders       int             `json:"totalOrders"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalPages        int             `json:"totalPages"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// SalesOrderLine pedido completado incluido en el reporte.
type SalesOrderLine struct {
	OrderNumber   string          `json:"orderNumber"`
	StudentName   string          `json:"studentName"`
	FileName      string          `json:"fileName"`
	Pages         int             `json:"pages"`
	Copies        int             `json:"copies"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	PaymentMethod string          `json:"paymentMethod"`
	CompletedAt   time.Time       `json:"completedAt"`
}

// SalesReport respuesta de GET /api/sales.
type SalesReport struct {
	Date             string                     `json:"date"` // YYYY-MM-DD
	Vendor           string                     `json:"vendor"`
	Sector           string                     `json:"sector"`
	Summary          SalesSummary               `json:"summary"`
	PaymentBreakdown map[string]decimal.Decimal `json:"paymentBreakdown"`
	Orders           []SalesOrderLine           `json:"orders"`
}
