package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore revocaciones en memoria. Solo sirve con una instancia del API;
// con varias réplicas se usa el store de Redis.
type SessionStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti → expiración del token
	now     func() time.Time
}

// NewSessionStore crea el store.
func NewSessionStore() *SessionStore {
	return &SessionStore{revoked: map[string]time.Time{}, now: time.Now}
}

// Revoke marca el jti como revocado hasta expiresAt y purga las entradas vencidas.
func (s *SessionStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
	if expiresAt.After(now) {
		s.revoked[tokenID] = expiresAt
	}
	return nil
}

// IsRevoked indica si el jti fue revocado y su token aún no expiró.
func (s *SessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.revoked[tokenID]
	return ok && exp.After(s.now()), nil
}
