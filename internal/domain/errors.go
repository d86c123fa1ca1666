package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound cubre tanto "no existe" como "pertenece a otro vendedor":
	// no se distingue para no revelar pedidos ajenos.
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrPaymentNotFound   = errors.New("pago no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
)
