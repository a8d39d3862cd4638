package oauth

import (
	"io"

	"golang.org/x/oauth2/endpoints"

	"github.com/dtroode/secrets-server/internal/model"
)

const (
	ProviderFacebook = "facebook"

	FacebookProfileURL = "https://graph.facebook.com/me?fields=id,name,email"
)

func NewFacebook(creds Credentials, opts ...Option) *Provider {
	return newProvider(ProviderFacebook, creds, endpoints.Facebook,
		[]string{"email"}, FacebookProfileURL, decodeFacebook, opts...)
}

func decodeFacebook(r io.Reader) (model.ExternalProfile, error) {
	var me struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &me); err != nil {
		return model.ExternalProfile{}, err
	}
	return model.ExternalProfile{ID: me.ID, Name: me.Name, Email: me.Email}, nil
}
