package oauth

import (
	"io"

	"golang.org/x/oauth2/endpoints"

	"github.com/dtroode/secrets-server/internal/model"
)

const (
	ProviderGoogle = "google"

	GoogleProfileURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// NewGoogle creates the Google provider with the profile and email scopes.
func NewGoogle(creds Credentials, opts ...Option) *Provider {
	return newProvider(ProviderGoogle, creds, endpoints.Google,
		[]string{"profile", "email"}, GoogleProfileURL, decodeGoogle, opts...)
}

func decodeGoogle(r io.Reader) (model.ExternalProfile, error) {
	var info struct {
		Sub   string `json:"sub"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &info); err != nil {
		return model.ExternalProfile{}, err
	}
	return model.ExternalProfile{ID: info.Sub, Name: info.Name, Email: info.Email}, nil
}
