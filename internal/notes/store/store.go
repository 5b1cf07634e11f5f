package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict is returned by conditional updates that matched no row
	// because the row changed underneath the caller.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Repositories are reached through
// it so a Tx exposes exactly the same surface as the root store.
type Store interface {
	Tenants() Tenants
	Users() Users
	Notes() Notes
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or
	// Rollback the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Nested transactions are not supported.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Tenants interface {
	CreateTenant(ctx context.Context, t domain.Tenant) error
	GetTenantByID(ctx context.Context, id string) (domain.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (domain.Tenant, error)

	// UpdateTenantPlan sets the plan and bumps updated_at.
	UpdateTenantPlan(ctx context.Context, id string, plan domain.Plan, now time.Time) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Users interface {
	// CreateUser returns ErrAlreadyExists when the email is taken in the tenant.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, tenantID, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, tenantID, email string) (domain.User, error)

	// FindUsersByEmail returns every account with email across all tenants.
	// It exists for login only.
	FindUsersByEmail(ctx context.Context, email string) ([]domain.User, error)

	ListUsers(ctx context.Context, tenantID string) ([]domain.User, error)
	CountUsers(ctx context.Context, tenantID string) (int, error)
}

type Notes interface {
	CreateNote(ctx context.Context, n domain.Note) error

	// GetNote returns the note with its author's email populated.
	GetNote(ctx context.Context, tenantID, id string) (domain.Note, error)

	// UpdateNote replaces title and content. ErrNotFound when no row in the
	// tenant matched.
	UpdateNote(ctx context.Context, n domain.Note) error

	DeleteNote(ctx context.Context, tenantID, id string) error

	ListNotes(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error)

	// CountNotes counts the notes matching search in a tenant; an empty
	// search counts everything.
	CountNotes(ctx context.Context, tenantID, search string) (int, error)
}

type Invitations interface {
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	GetInvitation(ctx context.Context, tenantID, id string) (domain.Invitation, error)
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// ListPendingInvitations returns PENDING invitations not yet expired at now.
	ListPendingInvitations(ctx context.Context, tenantID string, now time.Time) ([]domain.Invitation, error)
	CountPendingInvitations(ctx context.Context, tenantID string, now time.Time) (int, error)
	HasPendingInvitation(ctx context.Context, tenantID, email string, now time.Time) (bool, error)

	// TransitionInvitation moves an invitation from one status to another,
	// only if it is still in from. ErrConflict when it was not.
	TransitionInvitation(ctx context.Context, id string, from, to domain.InvitationStatus, at time.Time) error

	// ExpireInvitations marks PENDING invitations past their expiry as
	// EXPIRED and returns how many changed.
	ExpireInvitations(ctx context.Context, now time.Time) (int64, error)
}
