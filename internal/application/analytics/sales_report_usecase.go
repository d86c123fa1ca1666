package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

// DateLayout formato del parámetro ?date.
const DateLayout = "2006-01-02"

// SalesReportUseCase reporte diario de ventas del vendedor.
//
// Se calcula siempre desde PrintOrder + Payment; la tabla de ventas no se lee.
type SalesReportUseCase struct {
	orderRepo  repository.OrderRepository
	vendorRepo repository.VendorRepository
	now        func() time.Time
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(orderRepo repository.OrderRepository, vendorRepo repository.VendorRepository) *SalesReportUseCase {
	return &SalesReportUseCase{orderRepo: orderRepo, vendorRepo: vendorRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *SalesReportUseCase) WithClock(now func() time.Time) *SalesReportUseCase {
	uc.now = now
	return uc
}

// GetReport genera el reporte del día date (YYYY-MM-DD, vacío = hoy).
// Cabecera: nombre y sector del registro del vendedor; si no existe, los de la sesión.
//
// Dos lecturas en paralelo:
//  1. ListCompletedBetween(día) → totales, desglose por método y líneas
//  2. GetByID(vendedor)         → cabecera
func (uc *SalesReportUseCase) GetReport(ctx context.Context, session dto.VendorSession, date string) (*dto.SalesReport, error) {
	now := uc.now()
	if date == "" {
		date = now.Format(DateLayout)
	}
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q, se espera YYYY-MM-DD", domain.ErrInvalidInput, date)
	}
	start, end := dayWindow(day)

	type ordersResult struct {
		orders []*entity.OrderWithRelations
		err    error
	}
	type vendorResult struct {
		vendor *entity.Vendor
		err    error
	}
	ordersCh := make(chan ordersResult, 1)
	vendorCh := make(chan vendorResult, 1)

	go func() {
		list, err := uc.orderRepo.ListCompletedBetween(ctx, session.ID, start, end)
		ordersCh <- ordersResult{list, err}
	}()
	go func() {
		v, err := uc.vendorRepo.GetByID(ctx, session.ID)
		vendorCh <- vendorResult{v, err}
	}()

	completed := <-ordersCh
	vendor := <-vendorCh

	if completed.err != nil {
		return nil, fmt.Errorf("ventas: pedidos completados: %w", completed.err)
	}
	if vendor.err != nil {
		return nil, fmt.Errorf("ventas: vendedor: %w", vendor.err)
	}

	report := &dto.SalesReport{
		Date:             date,
		Vendor:           session.Name,
		Sector:           session.Sector,
		PaymentBreakdown: map[string]decimal.Decimal{},
		Orders:           make([]dto.SalesOrderLine, 0, len(completed.orders)),
	}
	if vendor.vendor != nil {
		report.Vendor = vendor.vendor.Name
		report.Sector = vendor.vendor.Sector
	}

	summary := dto.SalesSummary{TotalRevenue: decimal.Zero, AverageOrderValue: decimal.Zero}
	for _, o := range completed.orders {
		method := o.PaymentMethod()
		summary.TotalOrders++
		summary.TotalRevenue = summary.TotalRevenue.Add(o.Order.TotalPrice)
		summary.TotalPages += o.Order.TotalPages()
		report.PaymentBreakdown[method] = report.PaymentBreakdown[method].Add(o.Order.TotalPrice)
		report.Orders = append(report.Orders, dto.SalesOrderLine{
			OrderNumber:   o.Order.OrderNumber,
			StudentName:   o.StudentName(),
			FileName:      o.Order.FileName,
			Pages:         o.Order.PageCount,
			Copies:        o.Order.Copies,
			TotalPrice:    o.Order.TotalPrice,
			PaymentMethod: method,
			CompletedAt:   completionTime(o.Order),
		})
	}
	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalRevenue.
			Div(decimal.NewFromInt(int64(summary.TotalOrders))).
			Round(2)
	}
	report.Summary = summary
	return report, nil
}

// completionTime completed_at, o updated_at para filas anteriores a esa columna.
func completionTime(o *entity.PrintOrder) time.Time {
	if o.CompletedAt != nil {
		return *o.CompletedAt
	}
	return o.UpdatedAt
}
