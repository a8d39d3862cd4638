package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
)

// AuthPolicy holds deployment choices of the authenticator.
type AuthPolicy struct {
	// NormalizeEmail trims and lower-cases emails before lookup and insert.
	NormalizeEmail bool
}

// Auth verifies credentials, registers local principals and resolves
// federated identities.
type Auth struct {
	principals model.PrincipalStore
	hasher     model.SecretHasher
	policy     AuthPolicy
	logger     *logger.Logger
	now        func() time.Time
}

func NewAuth(
	principals model.PrincipalStore,
	hasher model.SecretHasher,
	policy AuthPolicy,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		principals: principals,
		hasher:     hasher,
		policy:     policy,
		logger:     logger,
		now:        time.Now,
	}
}

func (a *Auth) normalize(email string) string {
	if !a.policy.NormalizeEmail {
		return email
	}
	return strings.ToLower(strings.TrimSpace(email))
}

// VerifyCredential checks an email/secret pair against the local principal
// with that email. It distinguishes an unknown email from a wrong secret.
func (a *Auth) VerifyCredential(ctx context.Context, email, secret string) (model.Principal, error) {
	email = a.normalize(email)
	if email == "" || secret == "" {
		return model.Principal{}, model.ErrInvalidInput
	}

	a.logger.Debug("Auth service: verifying credential",
		"email", email)

	principal, err := a.principals.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: unknown identity",
			"email", email)
		return model.Principal{}, model.ErrUnknownIdentity
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get principal by email",
			"email", email,
			"error", err.Error())
		return model.Principal{}, fmt.Errorf("failed to get principal by email: %w", err)
	}

	ok, err := a.hasher.Verify(secret, principal.Credential)
	if err != nil {
		a.logger.Error("Auth service: failed to verify credential",
			"email", email,
			"principal_id", principal.ID,
			"error", err.Error())
		return model.Principal{}, fmt.Errorf("failed to verify credential: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: credential mismatch",
			"principal_id", principal.ID)
		return model.Principal{}, model.ErrCredentialMismatch
	}

	a.logger.Info("Auth service: credential verified",
		"principal_id", principal.ID)

	return principal, nil
}

// RegisterLocal creates a local principal. Uniqueness is left to the store,
// so of several concurrent registrations of one email exactly one succeeds.
func (a *Auth) RegisterLocal(ctx context.Context, email, secret string) (model.Principal, error) {
	email = a.normalize(email)
	if email == "" || secret == "" {
		return model.Principal{}, model.ErrInvalidInput
	}

	a.logger.Debug("Auth service: registering local principal",
		"email", email)

	credential, err := a.hasher.Hash(secret)
	if err != nil {
		a.logger.Error("Auth service: failed to hash secret",
			"email", email,
			"error", err.Error())
		return model.Principal{}, fmt.Errorf("failed to hash secret: %w", err)
	}

	now := a.now()
	principal, err := a.principals.Create(ctx, model.Principal{
		ID:         uuid.New(),
		Email:      email,
		Credential: credential,
		Provider:   model.ProviderLocal,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if errors.Is(err, model.ErrDuplicate) {
		a.logger.Info("Auth service: identity already exists",
			"email", email)
		return model.Principal{}, model.ErrIdentityAlreadyExists
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create principal",
			"email", email,
			"error", err.Error())
		return model.Principal{}, fmt.Errorf("failed to create principal: %w", err)
	}

	a.logger.Info("Auth service: local principal registered",
		"principal_id", principal.ID)

	return principal, nil
}

// ResolveFederatedIdentity returns the principal linked to an external
// profile, creating it on first sight. An existing principal is returned
// unchanged even if the provider now reports a different name or email.
func (a *Auth) ResolveFederatedIdentity(ctx context.Context, profile model.ExternalProfile) (model.Principal, error) {
	if profile.Provider == "" || profile.ID == "" || profile.Provider == model.ProviderLocal {
		return model.Principal{}, model.ErrInvalidInput
	}

	a.logger.Debug("Auth service: resolving federated identity",
		"provider", profile.Provider,
		"profile_id", profile.ID)

	principal, err := a.principals.GetByProviderID(ctx, profile.Provider, profile.ID)
	if err == nil {
		return principal, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get principal by provider id",
			"provider", profile.Provider,
			"profile_id", profile.ID,
			"error", err.Error())
		return model.Principal{}, fmt.Errorf("failed to get principal by provider id: %w", err)
	}

	now := a.now()
	principal, err = a.principals.Create(ctx, model.Principal{
		ID:                uuid.New(),
		Email:             orMissing(profile.Email),
		Provider:          profile.Provider,
		ProviderProfileID: profile.ID,
		Name:              orMissing(profile.Name),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if errors.Is(err, model.ErrDuplicate) {
		// another request created it between our read and insert
		principal, err = a.principals.GetByProviderID(ctx, profile.Provider, profile.ID)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create federated principal",
			"provider", profile.Provider,
			"profile_id", profile.ID,
			"error", err.Error())
		return model.Principal{}, fmt.Errorf("failed to create federated principal: %w", err)
	}

	a.logger.Info("Auth service: federated identity resolved",
		"provider", profile.Provider,
		"principal_id", principal.ID)

	return principal, nil
}

func orMissing(v string) string {
	if strings.TrimSpace(v) == "" {
		return model.MissingProfileField
	}
	return v
}
