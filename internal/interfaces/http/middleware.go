package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestObserver lo implementa *metrics.Metrics; la interfaz evita acoplar el transporte a Prometheus.
type RequestObserver interface {
	RequestStarted() func()
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RequestLogger registra una línea por petición: método, ruta, status, latencia,
// request id y vendedor (si hay sesión).
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("vendor_id", GetVendorID(c)).
			Msg("http")
		return err
	}
}

// Metrics mide duración y total de peticiones por plantilla de ruta.
func Metrics(obs RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		done := obs.RequestStarted()
		defer done()
		start := time.Now()
		err := c.Next()
		obs.ObserveRequest(c.Method(), c.Route().Path, responseStatus(c, err), time.Since(start))
		return err
	}
}

// responseStatus status final: si el handler devolvió error, aún no está escrito
// (lo escribe el ErrorHandler después).
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	status, _ := errorStatus(err)
	return status
}
