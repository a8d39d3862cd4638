package oauth

import (
	"io"
	"strconv"

	"golang.org/x/oauth2/endpoints"

	"github.com/dtroode/secrets-server/internal/model"
)

const (
	ProviderGitHub = "github"

	GitHubProfileURL = "https://api.github.com/user"
)

func NewGitHub(creds Credentials, opts ...Option) *Provider {
	return newProvider(ProviderGitHub, creds, endpoints.GitHub,
		[]string{"user:email"}, GitHubProfileURL, decodeGitHub, opts...)
}

// GitHub ids are numeric and name is optional, so login stands in for it.
func decodeGitHub(r io.Reader) (model.ExternalProfile, error) {
	var user struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &user); err != nil {
		return model.ExternalProfile{}, err
	}

	profile := model.ExternalProfile{Name: user.Name, Email: user.Email}
	if user.ID != 0 {
		profile.ID = strconv.FormatInt(user.ID, 10)
	}
	if profile.Name == "" {
		profile.Name = user.Login
	}
	return profile, nil
}
