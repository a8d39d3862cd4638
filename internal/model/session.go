package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is the idle lifetime of a session.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore persists the mapping between session tokens and principals.
// Get returns ErrNotFound for unknown and expired sessions.
type SessionStore interface {
	Put(ctx context.Context, sessionID string, principalID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (uuid.UUID, error)
	Touch(ctx context.Context, sessionID string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
