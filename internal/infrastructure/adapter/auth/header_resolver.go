package auth

import (
	"net/http"
	"strings"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	"github.com/jbdata/ledger-engine/internal/domain/port/auth"
)

// Default gateway headers
const (
	DefaultIDHeader   = "X-Principal-Id"
	DefaultRoleHeader = "X-Principal-Role"
)

// HeaderResolver trusts the principal headers set by the authenticating gateway
type HeaderResolver struct {
	idHeader   string
	roleHeader string
}

var _ auth.PrincipalResolver = (*HeaderResolver)(nil)

// NewHeaderResolver creates a resolver for the given header names. Empty names use the defaults.
func NewHeaderResolver(idHeader, roleHeader string) *HeaderResolver {
	if idHeader == "" {
		idHeader = DefaultIDHeader
	}
	if roleHeader == "" {
		roleHeader = DefaultRoleHeader
	}
	return &HeaderResolver{idHeader: idHeader, roleHeader: roleHeader}
}

// Resolve returns the principal carried by r. A request without an id header has no principal.
func (h *HeaderResolver) Resolve(r *http.Request) (entity.Principal, bool) {
	id := strings.TrimSpace(r.Header.Get(h.idHeader))
	if id == "" {
		return entity.Principal{}, false
	}

	return entity.Principal{
		ID:   id,
		Role: strings.ToLower(strings.TrimSpace(r.Header.Get(h.roleHeader))),
	}, true
}
