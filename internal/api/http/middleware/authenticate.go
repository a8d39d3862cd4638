package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
)

// SessionService resolves session tokens to principals.
type SessionService interface {
	Resolve(ctx context.Context, token string) (model.Principal, bool, error)
}

// Authenticate reads the session cookie and puts the principal into the
// request context.
type Authenticate struct {
	sessions       SessionService
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions SessionService, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		sessions:       sessions,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Optional resolves the session if present. Anonymous requests pass through.
func (m *Authenticate) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.resolve(c); err != nil {
			return err
		}
		return next(c)
	}
}

// Required rejects requests without a live session with 401.
func (m *Authenticate) Required(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ok, err := m.resolve(c)
		if err != nil {
			return err
		}
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required").SetInternal(model.ErrUnauthenticated)
		}
		return next(c)
	}
}

func (m *Authenticate) resolve(c echo.Context) (bool, error) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return false, nil
	}

	req := c.Request()
	principal, ok, err := m.sessions.Resolve(req.Context(), cookie.Value)
	if err != nil {
		m.logger.Error("Authenticate middleware: failed to resolve session",
			"error", err.Error())
		return false, err
	}
	if !ok {
		return false, nil
	}

	c.SetRequest(req.WithContext(m.contextManager.SetPrincipalToContext(req.Context(), principal)))
	return true, nil
}
