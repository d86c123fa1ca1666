package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/jprint-vendor-api/internal/application/analytics"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/xmlexport"
)

// SalesHandler reporte de ventas diario.
type SalesHandler struct {
	uc  *appanalytics.SalesReportUseCase
	log zerolog.Logger
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *appanalytics.SalesReportUseCase, log zerolog.Logger) *SalesHandler {
	return &SalesHandler{uc: uc, log: log}
}

// Report godoc
// @Summary      Reporte de ventas de un día
// @Tags         sales
// @Produce      json
// @Produce      xml
// @Param        date    query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Param        format  query  string  false  "json | xml"
// @Success      200     {object}  dto.SalesReport
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) Report(c *fiber.Ctx) error {
	format := c.Query("format", "json")
	if format != "json" && format != "xml" {
		return badRequest(c, "format must be json or xml")
	}
	report, err := h.uc.GetReport(c.UserContext(), GetVendor(c), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.log.Info().Err(err).Str("vendor_id", GetVendorID(c)).Msg("fecha de reporte inválida")
			return badRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
		return writeError(c, h.log, err)
	}
	if format == "json" {
		return c.JSON(report)
	}
	body, err := xmlexport.SalesReport(report)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, xmlexport.ContentType)
	return c.Send(body)
}
