package service

import (
	"errors"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
)

var (
	ErrInvalidCredentials = domain.Unauthenticated("Invalid email or password")
	ErrTenantSlugRequired = domain.Invalid("tenantSlug is required, this email belongs to more than one organization")
	ErrTenantNotFound     = domain.NotFound("Tenant not found")
	ErrCrossTenant        = domain.Forbidden("Cannot manage another organization")

	ErrNoteNotFound     = domain.NotFound("Note not found")
	ErrNoteLimitReached = domain.LimitExceeded("Note limit reached. Upgrade to Pro plan for unlimited notes.")
	ErrUserLimitReached = domain.LimitExceeded("User limit reached. Upgrade to Pro plan to invite more users.")

	ErrInvitationNotFound  = domain.NotFound("Invitation not found")
	ErrInvitationExpired   = domain.Invalid("Invitation has expired")
	ErrInvitationNotUsable = domain.Invalid("Invitation is no longer valid")
	ErrInvitationAccepted  = domain.Conflict("Invitation has already been accepted")
	ErrInvitationPending   = domain.Conflict("A pending invitation already exists for this email")
	ErrUserExists          = domain.Conflict("A user with this email already exists in this organization")
)

// mapMissing swaps store.ErrNotFound for a domain error.
func mapMissing(err, notFound error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return err
}
