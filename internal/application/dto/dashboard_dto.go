package dto

import "github.com/shopspring/decimal"

// DashboardStats KPIs del día.
type DashboardStats struct {
	TodayOrders     int             `json:"todayOrders"`
	TodayRevenue    decimal.Decimal `json:"todayRevenue"`
	PendingOrders   int             `json:"pendingOrders"`
	CompletedOrders int             `json:"completedOrders"`
}

// RecentOrder fila del widget de pedidos recientes.
type RecentOrder struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	StudentName   string          `json:"studentName"`
	FileName      string          `json:"fileName"`
	Copies        int             `json:"copies"`
	Pages         int             `json:"pages"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Time          string          `json:"time"` // "5 mins ago"
	PaymentStatus string          `json:"paymentStatus"`
}

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Stats        DashboardStats `json:"stats"`
	RecentOrders []RecentOrder  `json:"recentOrders"`
}
