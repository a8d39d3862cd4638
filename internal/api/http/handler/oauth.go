package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
)

// ProviderRegistry looks up enabled identity providers by name.
type ProviderRegistry interface {
	Get(name string) (model.IdentityProvider, error)
}

// OAuth handles the authorization-code flow of federated sign-in.
type OAuth struct {
	providers      ProviderRegistry
	stateSigner    model.StateSigner
	authService    AuthService
	sessionService SessionService
	cookie         CookieConfig
	logger         *logger.Logger
}

// NewOAuth creates a new OAuth handler.
func NewOAuth(
	providers ProviderRegistry,
	stateSigner model.StateSigner,
	authService AuthService,
	sessionService SessionService,
	cookie CookieConfig,
	logger *logger.Logger,
) *OAuth {
	return &OAuth{
		providers:      providers,
		stateSigner:    stateSigner,
		authService:    authService,
		sessionService: sessionService,
		cookie:         cookie,
		logger:         logger,
	}
}

// Begin redirects the browser to the provider's consent page.
func (h *OAuth) Begin(c echo.Context) error {
	provider, err := h.providers.Get(c.Param("provider"))
	if err != nil {
		return err
	}

	state, nonce, err := h.stateSigner.Generate(provider.Name())
	if err != nil {
		return err
	}
	c.SetCookie(h.cookie.state(nonce))

	return c.Redirect(http.StatusTemporaryRedirect, provider.AuthCodeURL(state))
}

// Callback completes the flow: it checks state against the nonce cookie
// set by Begin, exchanges the code, resolves the principal and signs it in.
func (h *OAuth) Callback(c echo.Context) error {
	provider, err := h.providers.Get(c.Param("provider"))
	if err != nil {
		return err
	}

	var nonce string
	if cookie, err := c.Cookie(h.cookie.StateName()); err == nil {
		nonce = cookie.Value
	}
	// single use
	c.SetCookie(h.cookie.stateExpired())

	if reason := c.QueryParam("error"); reason != "" {
		h.logger.Info("OAuth handler: provider denied authorization",
			"provider", provider.Name(),
			"reason", reason)
		return model.ErrUnauthenticated
	}

	if err := h.stateSigner.Validate(c.QueryParam("state"), provider.Name(), nonce); err != nil {
		h.logger.Warn("OAuth handler: invalid state",
			"provider", provider.Name(),
			"error", err.Error())
		return err
	}

	ctx := c.Request().Context()
	profile, err := provider.Exchange(ctx, c.QueryParam("code"))
	if err != nil {
		h.logger.Error("OAuth handler: exchange failed",
			"provider", provider.Name(),
			"error", err.Error())
		return err
	}

	principal, err := h.authService.ResolveFederatedIdentity(ctx, profile)
	if err != nil {
		return err
	}

	if err := establishSession(c, h.sessionService, h.cookie, principal); err != nil {
		return err
	}

	h.logger.Info("OAuth handler: federated sign-in completed",
		"provider", provider.Name(),
		"principal_id", principal.ID)

	return c.Redirect(http.StatusSeeOther, "/secrets")
}
