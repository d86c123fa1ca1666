package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/payments"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
)

// PaymentHandler maneja el estado de pago de los pedidos.
type PaymentHandler struct {
	uc  *payments.PaymentUseCase
	log zerolog.Logger
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.PaymentUseCase, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, log: log}
}

// UpdateStatus godoc
// @Summary      Cambiar el estado del pago de un pedido
// @Description  El id de la ruta es el del PEDIDO. paidAt se fija solo en COMPLETED.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del pedido"
// @Param        body  body  dto.UpdatePaymentStatusRequest  true  "COMPLETED | PENDING | FAILED"
// @Success      200   {object}  dto.PaymentMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [put]
func (h *PaymentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetVendorID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "Invalid payment status")
		}
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.PaymentMutationResponse{Success: true, Payment: *out})
}
