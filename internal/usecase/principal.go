package usecase

import (
	"github.com/google/uuid"
)

// PrincipalKind distinguishes how a caller authenticated.
type PrincipalKind string

const (
	PrincipalApiKey PrincipalKind = "api_key"
	PrincipalUser   PrincipalKind = "user"
)

// Principal is the single caller identity resolved at the request boundary.
// Everything below the middleware trusts it without re-validation.
type Principal struct {
	Kind PrincipalKind
	ID   uuid.UUID
	Role string
}

const (
	RoleAdmin    = "admin"
	RoleMerchant = "merchant"
	RoleService  = "service"
)

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) CanManageMerchant(merchantID uuid.UUID) bool {
	if p.IsAdmin() {
		return true
	}
	return p.Kind == PrincipalUser && p.ID == merchantID
}
