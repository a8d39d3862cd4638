package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
)

// NoteService defines secret note operations.
type NoteService interface {
	Submit(ctx context.Context, principalID uuid.UUID, text string) error
	List(ctx context.Context) ([]model.Note, error)
	Get(ctx context.Context, principalID uuid.UUID) (model.Note, error)
	Delete(ctx context.Context, principalID uuid.UUID) error
}

type submitRequest struct {
	Secret string `json:"secret" form:"secret" validate:"required,max=4096"`
}

type secretsResponse struct {
	Secrets []string `json:"secrets"`
}

type noteResponse struct {
	Secret string `json:"secret"`
}

// Secrets serves the secrets area. Every route requires a session.
type Secrets struct {
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSecrets creates a new Secrets handler.
func NewSecrets(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Secrets {
	return &Secrets{
		noteService:    noteService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns the notes of all principals without their authors.
func (h *Secrets) List(c echo.Context) error {
	notes, err := h.noteService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := secretsResponse{Secrets: make([]string, 0, len(notes))}
	for _, n := range notes {
		resp.Secrets = append(resp.Secrets, n.Content)
	}
	return c.JSON(http.StatusOK, resp)
}

// Submit stores the caller's note and sends the browser to the list.
func (h *Secrets) Submit(c echo.Context) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.Request().Context())
	if !ok {
		return model.ErrUnauthenticated
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.noteService.Submit(c.Request().Context(), principal.ID, req.Secret); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/secrets")
}

// Mine returns the caller's own note.
func (h *Secrets) Mine(c echo.Context) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.Request().Context())
	if !ok {
		return model.ErrUnauthenticated
	}

	note, err := h.noteService.Get(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, noteResponse{Secret: note.Content})
}

// Forget deletes the caller's own note.
func (h *Secrets) Forget(c echo.Context) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.Request().Context())
	if !ok {
		return model.ErrUnauthenticated
	}

	if err := h.noteService.Delete(c.Request().Context(), principal.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
