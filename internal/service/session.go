package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
)

const sessionTokenBytes = 32

// Sessions binds opaque tokens to principals.
type Sessions struct {
	store      model.SessionStore
	principals model.PrincipalStore
	ttl        time.Duration
	logger     *logger.Logger
}

func NewSessions(
	store model.SessionStore,
	principals model.PrincipalStore,
	ttl time.Duration,
	logger *logger.Logger,
) *Sessions {
	if ttl <= 0 {
		ttl = model.DefaultSessionTTL
	}
	return &Sessions{
		store:      store,
		principals: principals,
		ttl:        ttl,
		logger:     logger,
	}
}

// TTL returns the idle lifetime given to sessions.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Establish opens a session for an already authenticated principal.
func (s *Sessions) Establish(ctx context.Context, principal model.Principal) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.store.Put(ctx, token, principal.ID, s.ttl); err != nil {
		s.logger.Error("Session service: failed to store session",
			"principal_id", principal.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("Session service: session established",
		"principal_id", principal.ID)

	return token, nil
}

// Resolve returns the principal behind a session token. Missing, expired
// and orphaned sessions resolve to ok == false without an error.
func (s *Sessions) Resolve(ctx context.Context, token string) (model.Principal, bool, error) {
	if token == "" {
		return model.Principal{}, false, nil
	}

	principalID, err := s.store.Get(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return model.Principal{}, false, nil
	}
	if err != nil {
		s.logger.Error("Session service: failed to get session",
			"error", err.Error())
		return model.Principal{}, false, fmt.Errorf("failed to get session: %w", err)
	}

	principal, err := s.principals.GetByID(ctx, principalID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Session service: dropping session of missing principal",
			"principal_id", principalID)
		if err := s.store.Delete(ctx, token); err != nil {
			s.logger.Warn("Session service: failed to drop orphaned session",
				"error", err.Error())
		}
		return model.Principal{}, false, nil
	}
	if err != nil {
		s.logger.Error("Session service: failed to get principal",
			"principal_id", principalID,
			"error", err.Error())
		return model.Principal{}, false, fmt.Errorf("failed to get principal: %w", err)
	}

	if err := s.store.Touch(ctx, token, s.ttl); err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Warn("Session service: failed to extend session",
			"principal_id", principalID,
			"error", err.Error())
	}

	return principal, true, nil
}

// Terminate ends a session. Terminating an unknown session is not an error.
func (s *Sessions) Terminate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.store.Delete(ctx, token); err != nil {
		s.logger.Error("Session service: failed to delete session",
			"error", err.Error())
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("Session service: session terminated")

	return nil
}
