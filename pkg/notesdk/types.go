package notesdk

import "time"

// Envelope wraps every response body.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type LoginRequest struct {
	Email      string `json:"email" example:"admin@acme.test"`
	Password   string `json:"password" example:"password"`
	TenantSlug string `json:"tenantSlug,omitempty" example:"acme"`
}

// AuthResponse is returned by login and invitation acceptance.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
	Tenant    Tenant    `json:"tenant"`
}

type MeResponse struct {
	User   User   `json:"user"`
	Tenant Tenant `json:"tenant"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role" enums:"ADMIN,MEMBER"`
	TenantID  string    `json:"tenantId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Tenant struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan" enums:"FREE,PRO"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Limits uses -1 for unlimited.
type Limits struct {
	MaxNotes int `json:"maxNotes"`
	MaxUsers int `json:"maxUsers"`
}

type Usage struct {
	Notes              int    `json:"notes"`
	Users              int    `json:"users"`
	PendingInvitations int    `json:"pendingInvitations"`
	Limits             Limits `json:"limits"`
}

type TenantResponse struct {
	Tenant Tenant `json:"tenant"`
	Usage  Usage  `json:"usage"`
}

type UpgradeResponse struct {
	Tenant  Tenant `json:"tenant"`
	Message string `json:"message"`
}

type NoteRequest struct {
	Title   string `json:"title" example:"Groceries"`
	Content string `json:"content" example:"milk, eggs"`
}

type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"authorId"`
	AuthorEmail string    `json:"authorEmail,omitempty"`
	TenantID    string    `json:"tenantId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type NoteListResponse struct {
	Notes      []Note     `json:"notes"`
	Pagination Pagination `json:"pagination"`
}

// ListNotesParams are query options for listing notes. Zero values are
// left to server defaults.
type ListNotesParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string // createdAt, updatedAt, title
	SortOrder string // asc, desc
}

type InviteRequest struct {
	Email string `json:"email" example:"new@acme.test"`
	Role  string `json:"role,omitempty" enums:"ADMIN,MEMBER" example:"MEMBER"`
}

type Invitation struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status" enums:"PENDING,ACCEPTED,EXPIRED,CANCELLED"`
	InvitedBy string    `json:"invitedBy"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// InviteResponse carries the raw token. It is shown once and cannot be
// recovered later.
type InviteResponse struct {
	Invitation Invitation `json:"invitation"`
	Token      string     `json:"token"`
	AcceptURL  string     `json:"acceptUrl,omitempty"`
}

type InvitationDetails struct {
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	TenantName string    `json:"tenantName"`
	TenantSlug string    `json:"tenantSlug"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type AcceptInvitationRequest struct {
	Token    string `json:"token"`
	Password string `json:"password" example:"a-long-password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
