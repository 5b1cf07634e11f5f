package domain

import "time"

// InvitationTTL is how long an invitation token stays redeemable.
const InvitationTTL = 7 * 24 * time.Hour

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "PENDING"
	InvitationAccepted  InvitationStatus = "ACCEPTED"
	InvitationExpired   InvitationStatus = "EXPIRED"
	InvitationCancelled InvitationStatus = "CANCELLED"
)

// CanTransition reports whether from -> to is a legal status change. Only
// PENDING has exits.
func CanTransition(from, to InvitationStatus) bool {
	if from != InvitationPending {
		return false
	}
	switch to {
	case InvitationAccepted, InvitationExpired, InvitationCancelled:
		return true
	}
	return false
}

type Invitation struct {
	ID         string
	Email      string
	Role       Role
	TokenHash  string
	Status     InvitationStatus
	TenantID   string
	InvitedBy  string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	AcceptedAt *time.Time
}

// IsExpired is true once now reaches ExpiresAt, whatever the stored status.
func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// IsUsable reports whether the invitation can still be accepted at now.
func (i *Invitation) IsUsable(now time.Time) bool {
	return i.Status == InvitationPending && !i.IsExpired(now)
}
