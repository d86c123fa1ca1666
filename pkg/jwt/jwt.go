package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Vendor datos del vendedor que viajan en la cookie de sesión.
// Solo son confiables porque el token va firmado con HS256.
type Vendor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Sector string `json:"sector"`
}

// Claims incluye los claims estándar JWT más el vendedor de la sesión.
type Claims struct {
	jwt.RegisteredClaims
	Vendor Vendor `json:"vendor"`
}

// Session resultado de Parse: vendedor + identificador del token (jti) y su expiración,
// necesarios para revocar la sesión en el logout.
type Session struct {
	Vendor    Vendor
	TokenID   string
	ExpiresAt time.Time
}

// Generate genera un token firmado para el vendedor. El jti es un UUID aleatorio.
func Generate(secret, issuer string, vendor Vendor, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if vendor.ID == "" {
		return "", fmt.Errorf("jwt: vendor id vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    issuer,
			Subject:   vendor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Vendor: vendor,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve la sesión.
// El id del vendedor se toma del subject; un token con vendor.id distinto del subject es inválido.
func Parse(secret, tokenString string) (*Session, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("claims inválidos")
	}
	if claims.Subject == "" || claims.Subject != claims.Vendor.ID {
		return nil, errors.New("subject no coincide con el vendedor")
	}
	return &Session{
		Vendor:    claims.Vendor,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
