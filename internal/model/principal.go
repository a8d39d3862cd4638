package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProviderLocal tags principals that authenticate with email and password.
const ProviderLocal = "local"

// MissingProfileField replaces absent name or email values of federated profiles.
const MissingProfileField = "None"

// PrincipalStore defines persistence operations for principals.
type PrincipalStore interface {
	GetByEmail(ctx context.Context, email string) (Principal, error)
	GetByProviderID(ctx context.Context, provider, providerProfileID string) (Principal, error)
	GetByID(ctx context.Context, id uuid.UUID) (Principal, error)
	// Create returns ErrDuplicate when the email (local) or the
	// provider/profile pair (federated) is already taken.
	Create(ctx context.Context, principal Principal) (Principal, error)
	Save(ctx context.Context, principal Principal) error
	ListWithNotes(ctx context.Context) ([]Principal, error)
}

// Principal represents a registered identity, local or federated.
type Principal struct {
	ID                uuid.UUID
	Email             string
	Credential        string
	Provider          string
	ProviderProfileID string
	Name              string
	NoteKey           *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLocal reports whether the principal authenticates with a password.
func (p Principal) IsLocal() bool {
	return p.Provider == ProviderLocal
}
