package dto

import "time"

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VendorSession datos públicos del vendedor en sesión.
type VendorSession struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Sector string `json:"sector"`
}

// LoginResult salida del caso de uso de login: la respuesta y el token para la cookie.
type LoginResult struct {
	Vendor    VendorSession
	Token     string
	ExpiresAt time.Time
}

// LoginResponse cuerpo de la respuesta de login.
type LoginResponse struct {
	Success bool          `json:"success"`
	Vendor  VendorSession `json:"vendor"`
}

// VendorProfile perfil del vendedor autenticado (GET /api/auth/me).
type VendorProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Sector    string    `json:"sector"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// MeResponse cuerpo de GET /api/auth/me.
type MeResponse struct {
	Vendor VendorProfile `json:"vendor"`
}

// CreateVendorRequest alta de vendedor (comando seed / administración).
type CreateVendorRequest struct {
	Name     string
	Email    string
	Password string
	Sector   string
}
