package entity

import "time"

// Vendor operador de una imprenta del campus, ligado a un sector.
type Vendor struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash
	Sector       string // ej: SEC-128, MAIN-CAMPUS
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
