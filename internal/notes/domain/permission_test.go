package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/stretchr/testify/require"
)

func TestHasPermission(t *testing.T) {
	memberAllowed := map[domain.Permission]bool{
		domain.PermCreateNote: true,
		domain.PermReadNote:   true,
		domain.PermListNotes:  true,
		domain.PermUpdateNote: true,
		domain.PermDeleteNote: true,
		domain.PermViewTenant: true,
	}

	for p := domain.PermCreateNote; p <= domain.PermUpgradeSubscription; p++ {
		t.Run(p.String(), func(t *testing.T) {
			require.True(t, domain.HasPermission(domain.RoleAdmin, p))
			require.Equal(t, memberAllowed[p], domain.HasPermission(domain.RoleMember, p))
			require.False(t, domain.HasPermission("OWNER", p))
			require.False(t, domain.HasPermission("", p))
		})
	}

	require.False(t, domain.HasPermission(domain.RoleAdmin, domain.Permission(99)))
	require.Equal(t, "unknown", domain.Permission(99).String())
}

func TestCanPerformAction(t *testing.T) {
	admin := domain.Identity{UserID: "a", Role: domain.RoleAdmin, TenantID: "t"}
	member := domain.Identity{UserID: "m", Role: domain.RoleMember, TenantID: "t"}

	tests := []struct {
		name  string
		id    domain.Identity
		perm  domain.Permission
		owner string
		kind  domain.Kind
		ok    bool
	}{
		{"admin on someone else's note", admin, domain.PermUpdateNote, "m", 0, true},
		{"member on own note", member, domain.PermDeleteNote, "m", 0, true},
		{"member on other note", member, domain.PermUpdateNote, "a", domain.KindAuthorization, false},
		{"member without owner", member, domain.PermCreateNote, "", 0, true},
		{"member upgrade", member, domain.PermUpgradeSubscription, "", domain.KindAuthorization, false},
		{"member invite", member, domain.PermInviteUsers, "", domain.KindAuthorization, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.CanPerformAction(tt.id, tt.perm, tt.owner)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}
