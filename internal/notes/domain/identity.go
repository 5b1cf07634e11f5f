package domain

// Identity is the authenticated caller, derived from verified token claims.
// Services take it explicitly and scope every query by TenantID.
type Identity struct {
	UserID     string
	Email      string
	Role       Role
	TenantID   string
	TenantSlug string
}

func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }
