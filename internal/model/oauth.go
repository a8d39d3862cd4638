package model

import "context"

// ExternalProfile is the normalized identity returned by an OAuth provider.
type ExternalProfile struct {
	Provider string
	ID       string
	Name     string
	Email    string
}

// IdentityProvider completes the authorization-code flow of one provider.
type IdentityProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (ExternalProfile, error)
}

// StateSigner issues and checks OAuth state values bound to a provider.
// Generate also returns a nonce that must be presented with the state.
type StateSigner interface {
	Generate(provider string) (state string, nonce string, err error)
	Validate(state, provider, nonce string) error
}
