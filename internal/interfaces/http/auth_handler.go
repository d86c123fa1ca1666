package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jprint-vendor-api/internal/application/auth"
	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
)

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool // true en producción
}

// AuthHandler maneja login, logout y perfil del vendedor.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
	log    zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, log: log}
}

// Login godoc
// @Summary      Iniciar sesión del vendedor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "Email and password are required")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid credentials", Code: "INVALID_CREDENTIALS"})
		}
		return writeError(c, h.log, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.Token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		Expires:  out.ExpiresAt,
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.LoginResponse{Success: true, Vendor: out.Vendor})
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token y borra la cookie)
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.SuccessResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), c.Cookies(h.cookie.Name)); err != nil {
		return writeError(c, h.log, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Me perfil del vendedor autenticado.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	p, err := h.uc.Me(c.UserContext(), GetVendorID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MeResponse{Vendor: *p})
}
