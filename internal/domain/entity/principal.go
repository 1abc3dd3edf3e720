package entity

// RoleAdmin is the only role trusted by the reconciliation endpoints
const RoleAdmin = "admin"

// Principal is the authenticated caller supplied by the authentication collaborator
type Principal struct {
	ID   string
	Role string
}

// IsAdmin reports whether the principal may operate the ledger
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
