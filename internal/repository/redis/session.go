package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/secrets-server/internal/model"
)

const sessionKeyPrefix = "session:"

var _ model.SessionStore = (*SessionStore)(nil)

// SessionStore keeps sessions as plain keys with a TTL, so Redis expires
// abandoned sessions on its own.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{
		client: client,
	}
}

// NewSessionStoreWithURL parses a redis:// URL and connects to it.
func NewSessionStoreWithURL(ctx context.Context, url string) (*SessionStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w: %w", model.ErrStoreUnavailable, err)
	}

	return NewSessionStore(client), nil
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *SessionStore) Put(ctx context.Context, sessionID string, principalID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(sessionID), principalID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to put session: %w: %w", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, model.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get session: %w: %w", model.ErrStoreUnavailable, err)
	}

	principalID, err := uuid.Parse(val)
	if err != nil {
		// a value we did not write; treat the session as gone
		return uuid.Nil, model.ErrNotFound
	}

	return principalID, nil
}

func (s *SessionStore) Touch(ctx context.Context, sessionID string, ttl time.Duration) error {
	ok, err := s.client.Expire(ctx, key(sessionID), ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to touch session: %w: %w", model.ErrStoreUnavailable, err)
	}
	if !ok {
		return model.ErrNotFound
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w: %w", model.ErrStoreUnavailable, err)
	}
	return nil
}
