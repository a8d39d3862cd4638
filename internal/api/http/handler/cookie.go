package handler

import (
	"net/http"
	"time"

	"github.com/dtroode/secrets-server/internal/token"
)

// stateCookiePath covers every OAuth route, the legacy callback included.
const stateCookiePath = "/auth"

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func (cfg CookieConfig) session(token string) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		Expires:  time.Now().Add(cfg.TTL),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (cfg CookieConfig) expired() *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// StateName is the cookie carrying the OAuth state nonce.
func (cfg CookieConfig) StateName() string {
	return cfg.Name + "_oauth_state"
}

func (cfg CookieConfig) state(nonce string) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.StateName(),
		Value:    nonce,
		Path:     stateCookiePath,
		MaxAge:   int(token.StateTTL.Seconds()),
		Expires:  time.Now().Add(token.StateTTL),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (cfg CookieConfig) stateExpired() *http.Cookie {
	return &http.Cookie{
		Name:     cfg.StateName(),
		Value:    "",
		Path:     stateCookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
