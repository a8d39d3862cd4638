package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/dtroode/secrets-server/internal/model"
)

// DefaultTimeout bounds the code exchange and profile fetch together.
const DefaultTimeout = 10 * time.Second

// Credentials identify this application to a provider.
type Credentials struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

type profileDecoder func(r io.Reader) (model.ExternalProfile, error)

var _ model.IdentityProvider = (*Provider)(nil)

// Provider runs the authorization-code flow against one provider and maps
// its profile document to model.ExternalProfile.
type Provider struct {
	name       string
	config     *oauth2.Config
	profileURL string
	decode     profileDecoder
	httpClient *http.Client
	timeout    time.Duration
}

// Option customizes a Provider.
type Option func(*Provider)

// WithEndpoint overrides the provider's authorization and token URLs.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(p *Provider) {
		p.config.Endpoint = endpoint
	}
}

// WithProfileURL overrides the URL the profile is fetched from.
func WithProfileURL(url string) Option {
	return func(p *Provider) {
		p.profileURL = url
	}
}

// WithHTTPClient sets the client used for token and profile requests.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// WithTimeout sets the upstream deadline of Exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		p.timeout = timeout
	}
}

func newProvider(
	name string,
	creds Credentials,
	endpoint oauth2.Endpoint,
	scopes []string,
	profileURL string,
	decode profileDecoder,
	opts ...Option,
) *Provider {
	p := &Provider{
		name: name,
		config: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.CallbackURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		profileURL: profileURL,
		decode:     decode,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token and fetches the
// profile of the user who granted it.
func (p *Provider) Exchange(ctx context.Context, code string) (model.ExternalProfile, error) {
	if code == "" {
		return model.ExternalProfile{}, model.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return model.ExternalProfile{}, upstreamError(ctx, "exchange code", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return model.ExternalProfile{}, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.config.Client(ctx, tok).Do(req)
	if err != nil {
		return model.ExternalProfile{}, upstreamError(ctx, "fetch profile", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return model.ExternalProfile{}, fmt.Errorf("%w: profile request returned %s", model.ErrUpstream, resp.Status)
	}

	profile, err := p.decode(resp.Body)
	if err != nil {
		return model.ExternalProfile{}, upstreamError(ctx, "decode profile", err)
	}
	if profile.ID == "" {
		return model.ExternalProfile{}, fmt.Errorf("%w: profile has no id", model.ErrUpstream)
	}
	profile.Provider = p.name

	return profile, nil
}

func upstreamError(ctx context.Context, op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("failed to %s: %w: %w", op, model.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("failed to %s: %w: %w", op, model.ErrUpstream, err)
}

func decodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(io.LimitReader(r, 1<<20)).Decode(v)
}
