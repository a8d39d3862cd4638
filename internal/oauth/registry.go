package oauth

import (
	"sort"

	"github.com/dtroode/secrets-server/internal/model"
)

// Registry holds the identity providers enabled in this deployment.
type Registry struct {
	providers map[string]model.IdentityProvider
}

func NewRegistry(providers ...model.IdentityProvider) *Registry {
	r := &Registry{providers: make(map[string]model.IdentityProvider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// Get returns model.ErrUnknownProvider for names that are not enabled.
func (r *Registry) Get(name string) (model.IdentityProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, model.ErrUnknownProvider
	}
	return p, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
