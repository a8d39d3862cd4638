package token

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/secrets-server/internal/model"
)

// StateTTL bounds how long a user may take on the provider consent page.
const StateTTL = 10 * time.Minute

const stateIssuer = "secrets-server"

// StateClaims are carried in the OAuth state parameter.
type StateClaims struct {
	jwt.RegisteredClaims
	Provider string `json:"provider"`
}

var _ model.StateSigner = (*State)(nil)

// State signs OAuth state values with HMAC, so the callback can check them
// without server-side storage.
type State struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewState creates a state signer with the provided secret key.
func NewState(secretKey string) *State {
	return &State{
		secretKey: []byte(secretKey),
		ttl:       StateTTL,
		now:       time.Now,
	}
}

// Generate issues a state value bound to provider. The returned nonce is
// the state's jti; the caller keeps it on the user agent and passes it
// back to Validate, so a state only completes in the browser that began
// the flow.
func (s *State) Generate(provider string) (string, string, error) {
	now := s.now()
	nonce := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, StateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        nonce,
			Issuer:    stateIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Provider: provider,
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign state: %w", err)
	}

	return tokenString, nonce, nil
}

// Validate checks signature, expiry, the provider binding of state and
// that nonce is the one issued with it.
func (s *State) Validate(state, provider, nonce string) error {
	if state == "" || nonce == "" {
		return model.ErrInvalidState
	}

	claims := &StateClaims{}
	token, err := jwt.ParseWithClaims(state, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(stateIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidState, err)
	}
	if !token.Valid {
		return model.ErrInvalidState
	}
	if claims.Provider != provider {
		return fmt.Errorf("%w: issued for %q", model.ErrInvalidState, claims.Provider)
	}
	if subtle.ConstantTimeCompare([]byte(claims.ID), []byte(nonce)) != 1 {
		return fmt.Errorf("%w: nonce mismatch", model.ErrInvalidState)
	}

	return nil
}
