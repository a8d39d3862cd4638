package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
)

// AuthService defines credential verification, registration and
// federated identity resolution.
type AuthService interface {
	VerifyCredential(ctx context.Context, email, secret string) (model.Principal, error)
	RegisterLocal(ctx context.Context, email, secret string) (model.Principal, error)
	ResolveFederatedIdentity(ctx context.Context, profile model.ExternalProfile) (model.Principal, error)
}

// SessionService defines session establishment and termination.
type SessionService interface {
	Establish(ctx context.Context, principal model.Principal) (string, error)
	Resolve(ctx context.Context, token string) (model.Principal, bool, error)
	Terminate(ctx context.Context, token string) error
}

type credentialsRequest struct {
	Email    string `json:"email" form:"email" validate:"required,max=254"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

// registerRequest caps the password at bcrypt's 72-byte input limit.
type registerRequest struct {
	Email    string `json:"email" form:"email" validate:"required,max=254"`
	Password string `json:"password" form:"password" validate:"required,maxbytes=72"`
}

type principalResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
	Name     string `json:"name,omitempty"`
}

type homeResponse struct {
	Authenticated bool               `json:"authenticated"`
	Principal     *principalResponse `json:"principal,omitempty"`
}

func newPrincipalResponse(p model.Principal) principalResponse {
	return principalResponse{
		ID:       p.ID.String(),
		Email:    p.Email,
		Provider: p.Provider,
		Name:     p.Name,
	}
}

// Auth handles local registration, login and logout.
type Auth struct {
	authService    AuthService
	sessionService SessionService
	contextManager model.ContextManager
	cookie         CookieConfig
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	sessionService SessionService,
	contextManager model.ContextManager,
	cookie CookieConfig,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		sessionService: sessionService,
		contextManager: contextManager,
		cookie:         cookie,
		logger:         logger,
	}
}

func bindCredentials(c echo.Context) (credentialsRequest, error) {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return credentialsRequest{}, invalidInput(err)
	}
	if err := c.Validate(&req); err != nil {
		return credentialsRequest{}, err
	}
	return req, nil
}

// Register creates a local principal and signs it in.
func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	principal, err := h.authService.RegisterLocal(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := establishSession(c, h.sessionService, h.cookie, principal); err != nil {
		return err
	}

	h.logger.Info("Auth handler: principal registered",
		"principal_id", principal.ID)

	return c.JSON(http.StatusCreated, newPrincipalResponse(principal))
}

// Login verifies credentials and signs the principal in.
func (h *Auth) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	principal, err := h.authService.VerifyCredential(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := establishSession(c, h.sessionService, h.cookie, principal); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPrincipalResponse(principal))
}

// Logout ends the current session, if any, and sends the browser home.
func (h *Auth) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil {
		if err := h.sessionService.Terminate(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(h.cookie.expired())
	return c.Redirect(http.StatusSeeOther, "/")
}

// Me returns the signed-in principal.
func (h *Auth) Me(c echo.Context) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.Request().Context())
	if !ok {
		return model.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, newPrincipalResponse(principal))
}

// Home reports whether the request carries a live session.
func (h *Auth) Home(c echo.Context) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusOK, homeResponse{})
	}
	resp := newPrincipalResponse(principal)
	return c.JSON(http.StatusOK, homeResponse{Authenticated: true, Principal: &resp})
}

// establishSession runs only after the principal has been authenticated.
func establishSession(c echo.Context, sessions SessionService, cookie CookieConfig, principal model.Principal) error {
	token, err := sessions.Establish(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	c.SetCookie(cookie.session(token))
	return nil
}
