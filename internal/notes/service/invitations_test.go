package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestInviteAndAccept(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@acme.test")

	issued, err := e.invitations.Invite(ctx, admin, service.InviteInput{Email: "New@Acme.test", Role: "admin"})
	require.NoError(t, err)
	require.Equal(t, "new@acme.test", issued.Invitation.Email)
	require.Equal(t, domain.RoleAdmin, issued.Invitation.Role)
	require.Equal(t, domain.InvitationPending, issued.Invitation.Status)
	require.Equal(t, cryptox.FingerprintToken(issued.Token), issued.Invitation.TokenHash)
	require.Equal(t, issued.Invitation.CreatedAt.Add(7*24*time.Hour), issued.Invitation.ExpiresAt)
	require.Contains(t, issued.AcceptURL, "https://notes.example/users/invite/accept?token=")

	details, err := e.invitations.Lookup(ctx, issued.Token)
	require.NoError(t, err)
	require.Equal(t, "new@acme.test", details.Email)
	require.Equal(t, "acme", details.TenantSlug)

	sess, err := e.invitations.Accept(ctx, service.AcceptInput{Token: issued.Token, Password: "longenough"})
	require.NoError(t, err)
	require.Equal(t, "new@acme.test", sess.User.Email)
	require.Equal(t, domain.RoleAdmin, sess.User.Role)
	require.Equal(t, admin.TenantID, sess.Tenant.ID)

	claims, err := e.verifier.Verify(sess.Token)
	require.NoError(t, err)
	require.Equal(t, sess.User.ID, claims.UserID)

	inv, err := e.store.Invitations().GetInvitation(ctx, admin.TenantID, issued.Invitation.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationAccepted, inv.Status)
	require.NotNil(t, inv.AcceptedAt)

	// Single use.
	_, err = e.invitations.Accept(ctx, service.AcceptInput{Token: issued.Token, Password: "longenough"})
	require.ErrorIs(t, err, service.ErrInvitationNotUsable)

	// Invitee can log in.
	_, err = e.auth.Login(ctx, service.LoginInput{Email: "new@acme.test", Password: "longenough"})
	require.NoError(t, err)
}

func TestInviteRejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@acme.test")
	member := e.login(t, "user@acme.test")

	_, err := e.invitations.Invite(ctx, member, service.InviteInput{Email: "x@acme.test"})
	requireKind(t, err, domain.KindAuthorization)

	_, err = e.invitations.Invite(ctx, admin, service.InviteInput{Email: "bogus"})
	requireKind(t, err, domain.KindValidation)

	_, err = e.invitations.Invite(ctx, admin, service.InviteInput{Email: "x@acme.test", Role: "OWNER"})
	requireKind(t, err, domain.KindValidation)

	_, err = e.invitations.Invite(ctx, admin, service.InviteInput{Email: "USER@acme.test"})
	require.ErrorIs(t, err, service.ErrUserExists)

	_, err = e.invitations.Invite(ctx, admin, service.InviteInput{Email: "twice@acme.test"})
	require.NoError(t, err)
	_, err = e.invitations.Invite(ctx, admin, service.InviteInput{Email: "twice@acme.test"})
	require.ErrorIs(t, err, service.ErrInvitationPending)
}

func TestAcceptRejectsUnusableTokens(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@acme.test")

	countUsers := func() int {
		n, err := e.store.Users().CountUsers(ctx, admin.TenantID)
		require.NoError(t, err)
		return n
	}
	before := countUsers()

	_, err := e.invitations.Accept(ctx, service.AcceptInput{Token: "unknown", Password: "longenough"})
	require.ErrorIs(t, err, service.ErrInvitationNotFound)

	issued, err := e.invitations.Invite(ctx, admin, service.InviteInput{Email: "short@acme.test"})
	require.NoError(t, err)
	_, err = e.invitations.Accept(ctx, service.AcceptInput{Token: issued.Token, Password: "short"})
	requireKind(t, err, domain.KindValidation)

	// Cancelled.
	require.NoError(t, e.invitations.Cancel(ctx, admin, issued.Invitation.ID))
	_, err = e.invitations.Accept(ctx, service.AcceptInput{Token: issued.Token, Password: "longenough"})
	require.ErrorIs(t, err, service.ErrInvitationNotUsable)
	_, err = e.invitations.Lookup(ctx, issued.Token)
	require.ErrorIs(t, err, service.ErrInvitationNotUsable)

	// Expired.
	late, err := e.invitations.Invite(ctx, admin, service.InviteInput{Email: "late@acme.test"})
	require.NoError(t, err)
	e.clock.Advance(domain.InvitationTTL)
	_, err = e.invitations.Accept(ctx, service.AcceptInput{Token: late.Token, Password: "longenough"})
	require.ErrorIs(t, err, service.ErrInvitationExpired)

	inv, err := e.store.Invitations().GetInvitation(ctx, admin.TenantID, late.Invitation.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, inv.Status)

	require.Equal(t, before, countUsers())
}

func TestExpiredAcceptOnlyExpiresThatInvitation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@acme.test")

	first, err := e.invitations.Invite(ctx, admin, service.InviteInput{Email: "first@acme.test"})
	require.NoError(t, err)
	second, err := e.invitations.Invite(ctx, admin, service.InviteInput{Email: "second@acme.test"})
	require.NoError(t, err)
	e.clock.Advance(domain.InvitationTTL)

	_, err = e.invitations.Accept(ctx, service.AcceptInput{Token: first.Token, Password: "longenough"})
	require.ErrorIs(t, err, service.ErrInvitationExpired)

	inv, err := e.store.Invitations().GetInvitation(ctx, admin.TenantID, first.Invitation.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, inv.Status)

	// Untouched invitations wait for the housekeeping sweep.
	inv, err = e.store.Invitations().GetInvitation(ctx, admin.TenantID, second.Invitation.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, inv.Status)
}

func TestConcurrentAcceptCreatesOneUser(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@globex.test")

	issued, err := e.invitations.Invite(ctx, admin, service.InviteInput{Email: "race@globex.test"})
	require.NoError(t, err)

	const n = 4
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.invitations.Accept(ctx, service.AcceptInput{Token: issued.Token, Password: "longenough"})
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.Contains(t, []domain.Kind{domain.KindValidation, domain.KindConflict}, domain.KindOf(err), err.Error())
	}
	require.Equal(t, 1, ok)

	users, err := e.store.Users().FindUsersByEmail(ctx, "race@globex.test")
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestListAndCancelInvitations(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	acme := e.login(t, "admin@acme.test")
	globex := e.login(t, "admin@globex.test")

	issued, err := e.invitations.Invite(ctx, acme, service.InviteInput{Email: "a@acme.test"})
	require.NoError(t, err)

	pending, err := e.invitations.ListPending(ctx, acme)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	pending, err = e.invitations.ListPending(ctx, globex)
	require.NoError(t, err)
	require.Empty(t, pending)

	_, err = e.invitations.ListPending(ctx, e.login(t, "user@acme.test"))
	requireKind(t, err, domain.KindAuthorization)

	require.ErrorIs(t, e.invitations.Cancel(ctx, globex, issued.Invitation.ID), service.ErrInvitationNotFound)
	require.NoError(t, e.invitations.Cancel(ctx, acme, issued.Invitation.ID))
	requireKind(t, e.invitations.Cancel(ctx, acme, issued.Invitation.ID), domain.KindValidation)

	pending, err = e.invitations.ListPending(ctx, acme)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestHousekeepingExpiresInvitations(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@acme.test")

	issued, err := e.invitations.Invite(ctx, admin, service.InviteInput{Email: "old@acme.test"})
	require.NoError(t, err)

	hk := service.NewHousekeepingService(e.store, slogx.Discard(), time.Hour)
	hk.Now = e.clock.Now
	require.Zero(t, hk.Sweep(ctx))

	e.clock.Advance(domain.InvitationTTL + time.Second)
	require.EqualValues(t, 1, hk.Sweep(ctx))

	inv, err := e.store.Invitations().GetInvitation(ctx, admin.TenantID, issued.Invitation.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, inv.Status)

	hk.Start()
	hk.Stop()
}
