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

const noteKeyPrefix = "secrets/"

// Notes stores one secret note per principal in the blob store.
type Notes struct {
	principals model.PrincipalStore
	blobs      model.BlobStore
	logger     *logger.Logger
	now        func() time.Time
}

func NewNotes(principals model.PrincipalStore, blobs model.BlobStore, logger *logger.Logger) *Notes {
	return &Notes{
		principals: principals,
		blobs:      blobs,
		logger:     logger,
		now:        time.Now,
	}
}

func noteKey(principalID uuid.UUID) string {
	return noteKeyPrefix + principalID.String()
}

// Submit replaces the principal's note with text.
func (n *Notes) Submit(ctx context.Context, principalID uuid.UUID, text string) error {
	if strings.TrimSpace(text) == "" {
		return model.ErrInvalidInput
	}

	principal, err := n.principals.GetByID(ctx, principalID)
	if err != nil {
		return fmt.Errorf("failed to get principal: %w", err)
	}

	key := noteKey(principalID)
	if err := n.blobs.Put(ctx, key, []byte(text)); err != nil {
		n.logger.Error("Note service: failed to upload note",
			"principal_id", principalID,
			"error", err.Error())
		return fmt.Errorf("failed to upload note: %w", err)
	}

	principal.NoteKey = &key
	principal.UpdatedAt = n.now()
	if err := n.principals.Save(ctx, principal); err != nil {
		n.logger.Error("Note service: failed to save note key",
			"principal_id", principalID,
			"error", err.Error())
		return fmt.Errorf("failed to save note key: %w", err)
	}

	n.logger.Info("Note service: note submitted",
		"principal_id", principalID)

	return nil
}

// List returns every stored note. Notes whose blob has gone missing are skipped.
func (n *Notes) List(ctx context.Context) ([]model.Note, error) {
	principals, err := n.principals.ListWithNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list principals with notes: %w", err)
	}

	notes := make([]model.Note, 0, len(principals))
	for _, p := range principals {
		if p.NoteKey == nil {
			continue
		}
		data, err := n.blobs.Get(ctx, *p.NoteKey)
		if errors.Is(err, model.ErrNotFound) {
			n.logger.Warn("Note service: note blob missing",
				"principal_id", p.ID,
				"key", *p.NoteKey)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get note: %w", err)
		}
		notes = append(notes, model.Note{PrincipalID: p.ID, Content: string(data)})
	}

	return notes, nil
}

// Get returns the principal's own note.
func (n *Notes) Get(ctx context.Context, principalID uuid.UUID) (model.Note, error) {
	principal, err := n.principals.GetByID(ctx, principalID)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get principal: %w", err)
	}
	if principal.NoteKey == nil {
		return model.Note{}, model.ErrNotFound
	}

	data, err := n.blobs.Get(ctx, *principal.NoteKey)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note: %w", err)
	}

	return model.Note{PrincipalID: principalID, Content: string(data)}, nil
}

// Delete forgets the principal's note. The blob is removed after the
// reference is cleared, so a failed removal only leaves an orphan blob.
func (n *Notes) Delete(ctx context.Context, principalID uuid.UUID) error {
	principal, err := n.principals.GetByID(ctx, principalID)
	if err != nil {
		return fmt.Errorf("failed to get principal: %w", err)
	}
	if principal.NoteKey == nil {
		return model.ErrNotFound
	}

	key := *principal.NoteKey
	principal.NoteKey = nil
	principal.UpdatedAt = n.now()
	if err := n.principals.Save(ctx, principal); err != nil {
		n.logger.Error("Note service: failed to clear note key",
			"principal_id", principalID,
			"error", err.Error())
		return fmt.Errorf("failed to clear note key: %w", err)
	}

	if err := n.blobs.Delete(ctx, key); err != nil {
		n.logger.Warn("Note service: failed to remove note blob",
			"principal_id", principalID,
			"key", key,
			"error", err.Error())
	}

	n.logger.Info("Note service: note deleted",
		"principal_id", principalID)

	return nil
}
