// Package analytics contiene los casos de uso de lectura agregada del vendedor:
// el dashboard del día y el reporte diario de ventas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

const dashboardRecentOrders = 10 // filas del widget de pedidos recientes

// DashboardUseCase genera la foto del día del vendedor.
//
// Fuente de datos: pedidos creados hoy (hora local del servidor), más recientes primero.
type DashboardUseCase struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(orderRepo repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSnapshot KPIs del día y los últimos pedidos.
func (uc *DashboardUseCase) GetSnapshot(ctx context.Context, vendorID string) (*dto.DashboardResponse, error) {
	now := uc.now()
	start, end := dayWindow(now)

	orders, err := uc.orderRepo.ListCreatedBetween(ctx, vendorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("dashboard: pedidos de hoy: %w", err)
	}

	stats := dto.DashboardStats{TodayOrders: len(orders), TodayRevenue: decimal.Zero}
	for _, o := range orders {
		stats.TodayRevenue = stats.TodayRevenue.Add(o.Order.TotalPrice)
		switch o.Order.Status {
		case entity.OrderStatusPending:
			stats.PendingOrders++
		case entity.OrderStatusCompleted:
			stats.CompletedOrders++
		}
	}

	n := len(orders)
	if n > dashboardRecentOrders {
		n = dashboardRecentOrders
	}
	recent := make([]dto.RecentOrder, 0, n)
	for _, o := range orders[:n] {
		recent = append(recent, dto.RecentOrder{
			ID:            o.Order.ID,
			OrderNumber:   o.Order.OrderNumber,
			StudentName:   o.StudentName(),
			FileName:      o.Order.FileName,
			Copies:        o.Order.Copies,
			Pages:         o.Order.PageCount,
			Amount:        o.Order.TotalPrice,
			Status:        o.Order.Status,
			Time:          timeAgo(now, o.Order.CreatedAt),
			PaymentStatus: o.PaymentStatus(),
		})
	}

	return &dto.DashboardResponse{Stats: stats, RecentOrders: recent}, nil
}

// dayWindow [00:00, 00:00 del día siguiente) en la zona de t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// timeAgo etiqueta relativa en minutos truncados: "Just now", "5 mins ago", "2 hours ago", "3 days ago".
func timeAgo(now, t time.Time) string {
	mins := int(now.Sub(t) / time.Minute)
	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d mins ago", mins)
	case mins < 60*24:
		return fmt.Sprintf("%d hours ago", mins/60)
	default:
		return fmt.Sprintf("%d days ago", mins/(60*24))
	}
}
