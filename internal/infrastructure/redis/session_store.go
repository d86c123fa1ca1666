// Package redis store de revocación de sesiones sobre Redis (go-redis/v9).
// Comparte las revocaciones entre réplicas del API.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
	"github.com/jhoicas/jprint-vendor-api/pkg/config"
)

var _ ports.SessionStore = (*SessionStore)(nil)

const keyPrefix = "jprint:session:revoked:"

// SessionStore guarda cada jti revocado como clave con TTL igual a la vida restante del token.
type SessionStore struct {
	rdb *goredis.Client
	now func() time.Time
}

// NewClient crea el cliente y verifica la conexión con un ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewSessionStore construye el store sobre un cliente ya conectado.
func NewSessionStore(rdb *goredis.Client) *SessionStore {
	return &SessionStore{rdb: rdb, now: time.Now}
}

// Revoke marca el jti hasta expiresAt. Un token ya expirado no se guarda.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, keyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// IsRevoked consulta si existe la marca del jti.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.rdb.Get(ctx, keyPrefix+tokenID).Err()
	switch {
	case errors.Is(err, goredis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("redis get: %w", err)
	}
	return true, nil
}
