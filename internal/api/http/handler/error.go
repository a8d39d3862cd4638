package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
)

// User-facing authentication messages.
const (
	MsgUnknownEmail      = "Email does not exist!"
	MsgIncorrectPassword = "Password is incorrect!"
	MsgInvalidLogin      = "Email or password is incorrect!"
	MsgEmailExists       = "Email already exists!"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorHandler returns echo's error handler. With revealFailureReason
// set, login failures say whether the email or the password was wrong.
func NewErrorHandler(revealFailureReason bool, logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := mapError(err, revealFailureReason)
		if status >= http.StatusInternalServerError {
			logger.Error("HTTP handler: request failed",
				"path", c.Path(),
				"status", status,
				"error", err.Error())
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorResponse{Error: msg})
		}
		if writeErr != nil {
			logger.Error("HTTP handler: failed to write error response",
				"error", writeErr.Error())
		}
	}
}

func mapError(err error, reveal bool) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	switch {
	case errors.Is(err, model.ErrUnknownIdentity):
		if reveal {
			return http.StatusUnauthorized, MsgUnknownEmail
		}
		return http.StatusUnauthorized, MsgInvalidLogin
	case errors.Is(err, model.ErrCredentialMismatch):
		if reveal {
			return http.StatusUnauthorized, MsgIncorrectPassword
		}
		return http.StatusUnauthorized, MsgInvalidLogin
	case errors.Is(err, model.ErrIdentityAlreadyExists):
		return http.StatusConflict, MsgEmailExists
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, model.ErrInvalidState):
		return http.StatusBadRequest, "invalid oauth state"
	case errors.Is(err, model.ErrUnknownProvider):
		return http.StatusNotFound, "unknown identity provider"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, "identity provider timed out"
	case errors.Is(err, model.ErrUpstream):
		return http.StatusBadGateway, "identity provider error"
	case errors.Is(err, model.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
}
