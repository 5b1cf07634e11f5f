package http

import (
	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

func toUser(u domain.User) notesdk.User {
	return notesdk.User{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		TenantID:  u.TenantID,
		CreatedAt: u.CreatedAt,
	}
}

func toUsers(us []domain.User) []notesdk.User {
	out := make([]notesdk.User, 0, len(us))
	for _, u := range us {
		out = append(out, toUser(u))
	}
	return out
}

func toTenant(t domain.Tenant) notesdk.Tenant {
	return notesdk.Tenant{
		ID:        t.ID,
		Slug:      t.Slug,
		Name:      t.Name,
		Plan:      string(t.Plan),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toAuthResponse(s service.Session) notesdk.AuthResponse {
	return notesdk.AuthResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      toUser(s.User),
		Tenant:    toTenant(s.Tenant),
	}
}

func toNote(n domain.Note) notesdk.Note {
	return notesdk.Note{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		AuthorID:    n.AuthorID,
		AuthorEmail: n.AuthorEmail,
		TenantID:    n.TenantID,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func toNoteList(l service.NoteList) notesdk.NoteListResponse {
	notes := make([]notesdk.Note, 0, len(l.Notes))
	for _, n := range l.Notes {
		notes = append(notes, toNote(n))
	}
	p := l.Pagination
	return notesdk.NoteListResponse{
		Notes: notes,
		Pagination: notesdk.Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: p.TotalPages,
			HasNext:    p.HasNext,
			HasPrev:    p.HasPrev,
		},
	}
}

func toUsage(u service.Usage) notesdk.Usage {
	return notesdk.Usage{
		Notes:              u.Notes,
		Users:              u.Users,
		PendingInvitations: u.PendingInvitations,
		Limits: notesdk.Limits{
			MaxNotes: u.Limits.MaxNotes,
			MaxUsers: u.Limits.MaxUsers,
		},
	}
}

func toInvitation(i domain.Invitation) notesdk.Invitation {
	return notesdk.Invitation{
		ID:        i.ID,
		Email:     i.Email,
		Role:      string(i.Role),
		Status:    string(i.Status),
		InvitedBy: i.InvitedBy,
		CreatedAt: i.CreatedAt,
		ExpiresAt: i.ExpiresAt,
	}
}
