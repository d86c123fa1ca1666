package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jprint-vendor-api/internal/application/auth"
	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/pkg/jwt"
)

// LocalSession key de c.Locals con la sesión (*jwt.Session) del vendedor.
const LocalSession = "vendor_session"

// SessionMiddleware valida la cookie de sesión y deja la sesión en c.Locals.
// Cookie ausente, ilegible, con firma inválida, expirada o revocada → 401.
func SessionMiddleware(uc *auth.AuthUseCase, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msgUnauthorized, Code: "MISSING_SESSION"})
		}
		sess, err := uc.Authenticate(c.UserContext(), token)
		if err != nil {
			if auth.IsUnauthorized(err) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msgUnauthorized, Code: "INVALID_SESSION"})
			}
			return err
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware) o nil.
func GetSession(c *fiber.Ctx) *jwt.Session {
	s, _ := c.Locals(LocalSession).(*jwt.Session)
	return s
}

// GetVendorID devuelve el ID del vendedor en sesión o "".
func GetVendorID(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.Vendor.ID
	}
	return ""
}

// GetVendor datos públicos del vendedor en sesión.
func GetVendor(c *fiber.Ctx) dto.VendorSession {
	s := GetSession(c)
	if s == nil {
		return dto.VendorSession{}
	}
	return dto.VendorSession(s.Vendor)
}
