package domain

import "time"

type Tenant struct {
	ID        string
	Slug      string
	Name      string
	Plan      Plan
	CreatedAt time.Time
	UpdatedAt time.Time
}
