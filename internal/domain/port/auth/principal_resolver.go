package auth

import (
	"net/http"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
)

// PrincipalResolver extracts the authenticated principal supplied by the authentication collaborator.
// ok is false when the request carries no principal.
type PrincipalResolver interface {
	Resolve(r *http.Request) (principal entity.Principal, ok bool)
}
