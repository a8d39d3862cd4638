package model

import "errors"

// Storage errors.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("duplicate key")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Authentication errors.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnknownIdentity       = errors.New("unknown identity")
	ErrCredentialMismatch    = errors.New("credential mismatch")
	ErrIdentityAlreadyExists = errors.New("identity already exists")
	ErrUnauthenticated       = errors.New("unauthenticated")
)

// OAuth errors.
var (
	ErrUnknownProvider = errors.New("unknown identity provider")
	ErrInvalidState    = errors.New("invalid oauth state")
	ErrUpstream        = errors.New("identity provider error")
	ErrUpstreamTimeout = errors.New("identity provider timeout")
)
