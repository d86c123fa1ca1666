package entity

import "time"

// Student estudiante que envía pedidos de impresión. Se crea en su primer pedido
// (upsert por email) y no se modifica después.
type Student struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	RollNumber string
	Department string
	CreatedAt  time.Time
}
