// Package order contiene las reglas del ciclo de vida de un pedido de impresión:
// estados destino válidos, tabla de transiciones y número de pedido.
package order

import (
	"fmt"

	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// transitions tabla estricta: PENDING → ACCEPTED → PRINTING → COMPLETED,
// con CANCELLED alcanzable desde PENDING y ACCEPTED. Los estados finales no salen.
var transitions = map[string][]string{
	entity.OrderStatusPending:   {entity.OrderStatusAccepted, entity.OrderStatusCancelled},
	entity.OrderStatusAccepted:  {entity.OrderStatusPrinting, entity.OrderStatusCancelled},
	entity.OrderStatusPrinting:  {entity.OrderStatusCompleted},
	entity.OrderStatusCompleted: {},
	entity.OrderStatusCancelled: {},
}

// IsUpdateTarget indica si el estado puede pedirse en una actualización.
// PENDING es solo estado inicial.
func IsUpdateTarget(status string) bool {
	switch status {
	case entity.OrderStatusAccepted, entity.OrderStatusPrinting,
		entity.OrderStatusCompleted, entity.OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition consulta la tabla estricta.
func CanTransition(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionPolicy decide si un cambio de estado es aceptable.
type TransitionPolicy struct {
	Strict bool
}

// Check valida el destino y, en modo estricto, la transición.
// Devuelve domain.ErrInvalidInput o domain.ErrInvalidTransition envueltos.
func (p TransitionPolicy) Check(from, to string) error {
	if !IsUpdateTarget(to) {
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, to)
	}
	if p.Strict && !CanTransition(from, to) {
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// EntersCompleted indica si el cambio lleva el pedido a COMPLETED desde otro estado.
// Solo en ese caso se marca completedAt y se registra la venta.
func EntersCompleted(from, to string) bool {
	return to == entity.OrderStatusCompleted && from != entity.OrderStatusCompleted
}
