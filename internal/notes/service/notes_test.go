package service_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/stretchr/testify/require"
)

func TestNoteCreateGetRoundTrip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	member := e.login(t, "user@acme.test")

	created, err := e.notes.Create(ctx, member, service.NoteInput{Title: "  Groceries ", Content: "milk"})
	require.NoError(t, err)
	require.Equal(t, "Groceries", created.Title)
	require.Equal(t, member.UserID, created.AuthorID)
	require.Equal(t, member.TenantID, created.TenantID)

	got, err := e.notes.Get(ctx, member, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, created.Content, got.Content)
	require.Equal(t, "user@acme.test", got.AuthorEmail)
}

func TestNoteValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@globex.test")

	tests := []struct {
		name string
		in   service.NoteInput
	}{
		{"empty title", service.NoteInput{Title: "   "}},
		{"long title", service.NoteInput{Title: strings.Repeat("a", 201)}},
		{"long content", service.NoteInput{Title: "ok", Content: strings.Repeat("a", 10001)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.notes.Create(ctx, admin, tt.in)
			requireKind(t, err, domain.KindValidation)
		})
	}

	_, err := e.notes.Create(ctx, admin, service.NoteInput{Title: strings.Repeat("é", 200)})
	require.NoError(t, err)
}

func TestTenantIsolation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	acme := e.login(t, "admin@acme.test")
	globex := e.login(t, "admin@globex.test")

	note, err := e.notes.Create(ctx, acme, service.NoteInput{Title: "acme only"})
	require.NoError(t, err)

	_, err = e.notes.Get(ctx, globex, note.ID)
	require.ErrorIs(t, err, service.ErrNoteNotFound)
	_, err = e.notes.Update(ctx, globex, note.ID, service.NoteInput{Title: "owned"})
	require.ErrorIs(t, err, service.ErrNoteNotFound)
	require.ErrorIs(t, e.notes.Delete(ctx, globex, note.ID), service.ErrNoteNotFound)

	_, err = e.notes.Get(ctx, acme, "not-a-ulid")
	require.ErrorIs(t, err, service.ErrNoteNotFound)
	require.ErrorIs(t, e.notes.Delete(ctx, acme, note.ID+"x"), service.ErrNoteNotFound)

	list, err := e.notes.List(ctx, globex, service.ListQuery{})
	require.NoError(t, err)
	require.Empty(t, list.Notes)
	require.Zero(t, list.Pagination.Total)
}

func TestFreePlanNoteLimit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@acme.test")

	for i := range 3 {
		_, err := e.notes.Create(ctx, admin, service.NoteInput{Title: fmt.Sprintf("note %d", i)})
		require.NoError(t, err)
	}

	_, err := e.notes.Create(ctx, admin, service.NoteInput{Title: "one too many"})
	require.ErrorIs(t, err, service.ErrNoteLimitReached)
	requireKind(t, err, domain.KindLimitExceeded)

	n, err := e.store.Notes().CountNotes(ctx, admin.TenantID, "")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	// After upgrading the limit is gone.
	_, err = e.subscriptions.Upgrade(ctx, admin, "acme")
	require.NoError(t, err)
	_, err = e.notes.Create(ctx, admin, service.NoteInput{Title: "now allowed"})
	require.NoError(t, err)
}

func TestProPlanIsUnlimited(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@globex.test")

	for i := range 12 {
		_, err := e.notes.Create(ctx, admin, service.NoteInput{Title: fmt.Sprintf("note %d", i)})
		require.NoError(t, err)
	}
}

func TestMemberOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@acme.test")
	member := e.login(t, "user@acme.test")

	adminNote, err := e.notes.Create(ctx, admin, service.NoteInput{Title: "admin's"})
	require.NoError(t, err)
	memberNote, err := e.notes.Create(ctx, member, service.NoteInput{Title: "member's"})
	require.NoError(t, err)

	// Members can read but not change other people's notes.
	_, err = e.notes.Get(ctx, member, adminNote.ID)
	require.NoError(t, err)
	_, err = e.notes.Update(ctx, member, adminNote.ID, service.NoteInput{Title: "mine now"})
	requireKind(t, err, domain.KindAuthorization)
	requireKind(t, e.notes.Delete(ctx, member, adminNote.ID), domain.KindAuthorization)

	// Their own notes are fine.
	e.clock.Advance(time.Minute)
	updated, err := e.notes.Update(ctx, member, memberNote.ID, service.NoteInput{Title: "edited", Content: "x"})
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Title)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	// Admins may change anything in their tenant.
	_, err = e.notes.Update(ctx, admin, memberNote.ID, service.NoteInput{Title: "moderated"})
	require.NoError(t, err)
	require.NoError(t, e.notes.Delete(ctx, admin, memberNote.ID))
	require.NoError(t, e.notes.Delete(ctx, admin, adminNote.ID))

	_, err = e.notes.Get(ctx, admin, adminNote.ID)
	require.ErrorIs(t, err, service.ErrNoteNotFound)
}

func TestNoteList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@globex.test")

	for i := range 25 {
		e.clock.Advance(time.Second)
		_, err := e.notes.Create(ctx, admin, service.NoteInput{
			Title:   fmt.Sprintf("note %02d", i),
			Content: map[bool]string{true: "Meeting minutes", false: "todo"}[i%5 == 0],
		})
		require.NoError(t, err)
	}

	list, err := e.notes.List(ctx, admin, service.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Notes, 10)
	require.Equal(t, "note 24", list.Notes[0].Title)
	require.Equal(t, domain.Pagination{Page: 1, Limit: 10, Total: 25, TotalPages: 3, HasNext: true}, list.Pagination)

	list, err = e.notes.List(ctx, admin, service.ListQuery{Page: 3, SortBy: "title", SortOrder: "ASC"})
	require.NoError(t, err)
	require.Len(t, list.Notes, 5)
	require.Equal(t, "note 20", list.Notes[0].Title)
	require.False(t, list.Pagination.HasNext)
	require.True(t, list.Pagination.HasPrev)

	list, err = e.notes.List(ctx, admin, service.ListQuery{Limit: 500, Search: "MEETING"})
	require.NoError(t, err)
	require.Equal(t, 100, list.Pagination.Limit)
	require.Equal(t, 5, list.Pagination.Total)
	require.Len(t, list.Notes, 5)

	_, err = e.notes.List(ctx, admin, service.ListQuery{SortBy: "author"})
	requireKind(t, err, domain.KindValidation)
	_, err = e.notes.List(ctx, admin, service.ListQuery{SortOrder: "sideways"})
	requireKind(t, err, domain.KindValidation)
}

func TestNoteListRejectsOverflowingPage(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.login(t, "admin@globex.test")

	_, err := e.notes.Create(ctx, admin, service.NoteInput{Title: "only"})
	require.NoError(t, err)

	_, err = e.notes.List(ctx, admin, service.ListQuery{Page: 1 << 62, Limit: 100})
	requireKind(t, err, domain.KindValidation)

	// The last page whose offset still fits is accepted and simply empty.
	list, err := e.notes.List(ctx, admin, service.ListQuery{Page: math.MaxInt/100 + 1, Limit: 100})
	require.NoError(t, err)
	require.Empty(t, list.Notes)
	require.Equal(t, 1, list.Pagination.Total)
}
