package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/jprint-vendor-api/internal/application/analytics"
)

// DashboardHandler maneja el tablero del vendedor.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Get devuelve los KPIs del día y los pedidos recientes.
// GET /api/dashboard
//
// Respuesta: DashboardResponse (stats{todayOrders, todayRevenue, pendingOrders,
// completedOrders}, recentOrders[10]).
// El día es el día local del servidor; no recibe parámetros.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetSnapshot(c.UserContext(), GetVendorID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
