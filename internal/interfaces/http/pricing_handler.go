package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/usecase"
)

// PricingHandler reglas de precio y cotizaciones.
type PricingHandler struct {
	uc  *usecase.PricingUseCase
	log zerolog.Logger
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase, log zerolog.Logger) *PricingHandler {
	return &PricingHandler{uc: uc, log: log}
}

// Rules GET /api/pricing/rules
func (h *PricingHandler) Rules(c *fiber.Ctx) error {
	return c.JSON(dto.PricingRulesResponse{Rules: h.uc.Rules()})
}

// Quote godoc
// @Summary      Cotizar un trabajo de impresión
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "páginas, copias y opciones"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/quote [post]
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	out, err := h.uc.Quote(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
