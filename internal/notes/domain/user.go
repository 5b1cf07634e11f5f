package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type User struct {
	ID           string
	Email        string // lower-cased
	PasswordHash string // argon2id PHC string
	Role         Role
	TenantID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
