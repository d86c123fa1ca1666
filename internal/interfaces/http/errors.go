package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
)

// Mensajes públicos compartidos por varios handlers.
const (
	msgUnauthorized   = "Unauthorized"
	msgInternal       = "Internal server error"
	msgOrderNotFound  = "Order not found"
	msgInvalidBody    = "Invalid request body"
	msgPaymentMissing = "Payment not found"
	msgInvalidInput   = "Invalid request"
	msgTransition     = "Status transition not allowed"
	msgDuplicate      = "Resource already exists"
)

// errorStatus traduce un error de dominio a status HTTP + cuerpo {error, code}.
// Los mensajes son fijos; el texto del error de dominio solo va al log.
func errorStatus(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Error: msgUnauthorized, Code: "UNAUTHORIZED"}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidInput, Code: "VALIDATION"}
	case errors.Is(err, domain.ErrPaymentNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Error: msgPaymentMissing, Code: "PAYMENT_NOT_FOUND"}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Error: msgOrderNotFound, Code: "NOT_FOUND"}
	case errors.Is(err, domain.ErrInvalidTransition):
		return fiber.StatusConflict, dto.ErrorResponse{Error: msgTransition, Code: "INVALID_TRANSITION"}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Error: msgDuplicate, Code: "DUPLICATE"}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal, Code: "INTERNAL"}
	}
}

// writeError responde el error mapeado. Los 500 se registran como error; los 400 y
// 409 a nivel info con el detalle que no viaja en la respuesta.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	status, body := errorStatus(err)
	switch {
	case status >= fiber.StatusInternalServerError:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("vendor_id", GetVendorID(c)).
			Msg("error interno")
	case status == fiber.StatusBadRequest || status == fiber.StatusConflict:
		log.Info().Err(err).
			Str("path", c.Path()).
			Str("vendor_id", GetVendorID(c)).
			Str("code", body.Code).
			Msg("petición rechazada")
	}
	return c.Status(status).JSON(body)
}

// badRequest 400 con mensaje propio (cuerpo ilegible, validación previa al caso de uso).
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg, Code: "VALIDATION"})
}

// ErrorHandler manejador de errores de Fiber: errores no tratados por los handlers
// (rutas inexistentes, panics recuperados) con el mismo cuerpo {error, code}.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message, Code: codeForStatus(fe.Code)})
		}
		return writeError(c, log, err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "VALIDATION"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	default:
		if status >= fiber.StatusInternalServerError {
			return "INTERNAL"
		}
		return "ERROR"
	}
}
