package model

import "github.com/google/uuid"

// Note is a secret submitted by an authenticated principal.
type Note struct {
	PrincipalID uuid.UUID
	Content     string
}
