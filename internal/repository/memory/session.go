package memory

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/google/uuid"

	"github.com/dtroode/secrets-server/internal/model"
)

// entry layout: 16 bytes principal id, 8 bytes expiry in unix nanoseconds.
const entrySize = 16 + 8

var _ model.SessionStore = (*SessionStore)(nil)

// SessionStore is a process-local session store for single-instance
// deployments and development. Sessions are lost on restart.
type SessionStore struct {
	cache *bigcache.BigCache
	now   func() time.Time

	// serializes read-modify-write in Touch against Delete
	mu sync.Mutex
}

// NewSessionStore creates a store whose entries are evicted by bigcache
// no later than lifeWindow after their last write.
func NewSessionStore(lifeWindow time.Duration) (*SessionStore, error) {
	config := bigcache.DefaultConfig(lifeWindow)
	config.Shards = 64
	config.MaxEntrySize = entrySize

	cache, err := bigcache.NewBigCache(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &SessionStore{
		cache: cache,
		now:   time.Now,
	}, nil
}

func (s *SessionStore) Close() error {
	return s.cache.Close()
}

func (s *SessionStore) encode(principalID uuid.UUID, ttl time.Duration) []byte {
	buf := make([]byte, entrySize)
	copy(buf[:16], principalID[:])
	binary.BigEndian.PutUint64(buf[16:], uint64(s.now().Add(ttl).UnixNano()))
	return buf
}

func (s *SessionStore) lookup(sessionID string) (uuid.UUID, error) {
	buf, err := s.cache.Get(sessionID)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return uuid.Nil, model.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get session: %w: %w", model.ErrStoreUnavailable, err)
	}
	if len(buf) != entrySize {
		return uuid.Nil, model.ErrNotFound
	}

	expiresAt := time.Unix(0, int64(binary.BigEndian.Uint64(buf[16:])))
	if !s.now().Before(expiresAt) {
		_ = s.cache.Delete(sessionID)
		return uuid.Nil, model.ErrNotFound
	}

	var principalID uuid.UUID
	copy(principalID[:], buf[:16])
	return principalID, nil
}

func (s *SessionStore) Put(_ context.Context, sessionID string, principalID uuid.UUID, ttl time.Duration) error {
	if err := s.cache.Set(sessionID, s.encode(principalID, ttl)); err != nil {
		return fmt.Errorf("failed to put session: %w: %w", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SessionStore) Get(_ context.Context, sessionID string) (uuid.UUID, error) {
	return s.lookup(sessionID)
}

func (s *SessionStore) Touch(_ context.Context, sessionID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	principalID, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	if err := s.cache.Set(sessionID, s.encode(principalID, ttl)); err != nil {
		return fmt.Errorf("failed to touch session: %w: %w", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.cache.Delete(sessionID)
	if err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return fmt.Errorf("failed to delete session: %w: %w", model.ErrStoreUnavailable, err)
	}
	return nil
}
