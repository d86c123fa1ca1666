package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/orders"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP de pedidos de impresión (protegido).
type OrderHandler struct {
	create   *orders.CreateOrderUseCase
	status   *orders.UpdateStatusUseCase
	query    *orders.QueryUseCase
	receipts *orders.ReceiptUseCase
	log      zerolog.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	create *orders.CreateOrderUseCase,
	status *orders.UpdateStatusUseCase,
	query *orders.QueryUseCase,
	receipts *orders.ReceiptUseCase,
	log zerolog.Logger,
) *OrderHandler {
	return &OrderHandler{create: create, status: status, query: query, receipts: receipts, log: log}
}

// Create godoc
// @Summary      Registrar un pedido de impresión
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "estudiante, archivo y opciones de impresión"
// @Success      201   {object}  dto.OrderMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	out, err := h.create.Create(c.UserContext(), GetVendorID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderMutationResponse{Success: true, Order: *out})
}

// History últimos pedidos del vendedor (máx. 50).
// GET /api/orders/history
func (h *OrderHandler) History(c *fiber.Ctx) error {
	list, err := h.query.History(c.UserContext(), GetVendorID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OrderHistoryResponse{Orders: list})
}

// GetByID detalle de un pedido del vendedor.
// GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.Get(c.UserContext(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OrderDetailResponse{Order: *out})
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un pedido
// @Description  Al pasar a COMPLETED con el pago COMPLETED registra una venta.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "ACCEPTED | PRINTING | COMPLETED | CANCELLED"
// @Success      200   {object}  dto.OrderMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	out, err := h.status.UpdateStatus(c.UserContext(), GetVendorID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "Invalid status")
		}
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OrderMutationResponse{Success: true, Order: *out})
}

// Download comprobante del pedido como adjunto (?format=txt|pdf, por defecto txt).
// GET /api/orders/:id/download
func (h *OrderHandler) Download(c *fiber.Ctx) error {
	r, err := h.receipts.Download(c.UserContext(), GetVendorID(c), c.Params("id"), c.Query("format"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, r.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", r.Filename))
	return c.Send(r.Body)
}
