package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
	"github.com/jhoicas/jprint-vendor-api/pkg/jwt"
)

// PasswordCost costo bcrypt para hashes nuevos.
const PasswordCost = 12

// SessionConfig configuración para la emisión de la cookie de sesión.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase casos de uso de autenticación del vendedor: login, logout, perfil
// y validación del token de sesión.
type AuthUseCase struct {
	vendorRepo repository.VendorRepository
	sessions   ports.SessionStore
	cfg        SessionConfig
	log        zerolog.Logger
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(vendorRepo repository.VendorRepository, sessions ports.SessionStore, cfg SessionConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{vendorRepo: vendorRepo, sessions: sessions, cfg: cfg, log: log, now: time.Now}
}

// HashPassword genera el hash bcrypt de una contraseña.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: contraseña vacía", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifica email/password y emite el token de sesión.
// Vendedor inexistente, inactivo o contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}
	vendor, err := uc.vendorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar vendedor: %w", err)
	}
	if vendor == nil || !vendor.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	session := toVendorSession(vendor)
	token, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, jwt.Vendor(session), uc.cfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("emitir sesión: %w", err)
	}
	uc.log.Info().Str("vendor_id", vendor.ID).Msg("login correcto")
	return &dto.LoginResult{
		Vendor:    session,
		Token:     token,
		ExpiresAt: uc.now().Add(uc.cfg.TTL),
	}, nil
}

// Authenticate valida firma, expiración y revocación del token de la cookie.
// Cualquier fallo se reporta como ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*jwt.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	sess, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	revoked, err := uc.sessions.IsRevoked(ctx, sess.TokenID)
	if err != nil {
		return nil, fmt.Errorf("consultar revocación: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: sesión revocada", domain.ErrUnauthorized)
	}
	return sess, nil
}

// Logout revoca el token hasta su expiración. Un token ilegible no es un error:
// la cookie se borra igualmente.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sess, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil
	}
	if err := uc.sessions.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		return fmt.Errorf("revocar sesión: %w", err)
	}
	uc.log.Info().Str("vendor_id", sess.Vendor.ID).Msg("logout")
	return nil
}

// Me devuelve el perfil del vendedor de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, vendorID string) (*dto.VendorProfile, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("buscar vendedor: %w", err)
	}
	if vendor == nil || !vendor.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return &dto.VendorProfile{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Email:     vendor.Email,
		Sector:    vendor.Sector,
		IsActive:  vendor.IsActive,
		CreatedAt: vendor.CreatedAt,
	}, nil
}

// IsUnauthorized indica si err es un fallo de autenticación (401) y no de infraestructura.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

func toVendorSession(v *entity.Vendor) dto.VendorSession {
	return dto.VendorSession{ID: v.ID, Name: v.Name, Email: v.Email, Sector: v.Sector}
}
