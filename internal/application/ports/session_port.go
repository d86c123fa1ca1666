package ports

import (
	"context"
	"time"
)

// SessionStore registra los identificadores (jti) de sesiones revocadas en el logout.
// Una entrada solo necesita vivir hasta la expiración del token.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
