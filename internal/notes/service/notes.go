package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type NoteInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"max=10000"`
}

// ListQuery is a page request as received from the client. Zero values pick
// the defaults.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

type NoteList struct {
	Notes      []domain.Note
	Pagination domain.Pagination
}

type NoteService struct {
	Store         store.Store
	Subscriptions *SubscriptionService
	Now           func() time.Time
}

func (s *NoteService) Create(ctx context.Context, id domain.Identity, in NoteInput) (domain.Note, error) {
	log := slogx.FromContext(ctx)

	// 1. Permission, input, then quota
	if err := domain.CanPerformAction(id, domain.PermCreateNote, ""); err != nil {
		return domain.Note{}, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return domain.Note{}, err
	}
	if err := s.Subscriptions.CanCreateNote(ctx, id.TenantID); err != nil {
		if errors.Is(err, ErrNoteLimitReached) {
			log.Info("note limit reached", slog.String("tenant_id", id.TenantID))
		}
		return domain.Note{}, err
	}

	// 2. Insert, authored by the caller
	now := clock(s.Now)
	note := domain.Note{
		ID:          idx.NewAt(now).String(),
		Title:       in.Title,
		Content:     in.Content,
		AuthorID:    id.UserID,
		AuthorEmail: id.Email,
		TenantID:    id.TenantID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Notes().CreateNote(ctx, note); err != nil {
		log.Error("failed to create note", slog.Any("error", err))
		return domain.Note{}, err
	}

	log.Debug("note created", slog.String("note_id", note.ID))
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, id domain.Identity, noteID string) (domain.Note, error) {
	if err := domain.CanPerformAction(id, domain.PermReadNote, ""); err != nil {
		return domain.Note{}, err
	}
	return s.load(ctx, id.TenantID, noteID)
}

func (s *NoteService) load(ctx context.Context, tenantID, noteID string) (domain.Note, error) {
	if !idx.Valid(noteID) {
		return domain.Note{}, ErrNoteNotFound
	}
	note, err := s.Store.Notes().GetNote(ctx, tenantID, noteID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Note{}, ErrNoteNotFound
	}
	return note, err
}

// Update replaces a note's title and content. Members may only edit notes
// they authored.
func (s *NoteService) Update(ctx context.Context, id domain.Identity, noteID string, in NoteInput) (domain.Note, error) {
	log := slogx.FromContext(ctx)

	// 1. Input
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return domain.Note{}, err
	}

	// 2. Existence inside the tenant, then ownership
	note, err := s.load(ctx, id.TenantID, noteID)
	if err != nil {
		return domain.Note{}, err
	}
	if err := domain.CanPerformAction(id, domain.PermUpdateNote, note.AuthorID); err != nil {
		log.Warn("note update denied", slog.String("note_id", noteID))
		return domain.Note{}, err
	}

	// 3. Write
	note.Title = in.Title
	note.Content = in.Content
	note.UpdatedAt = clock(s.Now)
	if err := s.Store.Notes().UpdateNote(ctx, note); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Note{}, ErrNoteNotFound
		}
		log.Error("failed to update note", slog.String("note_id", noteID), slog.Any("error", err))
		return domain.Note{}, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id domain.Identity, noteID string) error {
	log := slogx.FromContext(ctx)

	note, err := s.load(ctx, id.TenantID, noteID)
	if err != nil {
		return err
	}
	if err := domain.CanPerformAction(id, domain.PermDeleteNote, note.AuthorID); err != nil {
		log.Warn("note delete denied", slog.String("note_id", noteID))
		return err
	}

	if err := s.Store.Notes().DeleteNote(ctx, id.TenantID, noteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoteNotFound
		}
		log.Error("failed to delete note", slog.String("note_id", noteID), slog.Any("error", err))
		return err
	}
	return nil
}

func (s *NoteService) List(ctx context.Context, id domain.Identity, q ListQuery) (NoteList, error) {
	if err := domain.CanPerformAction(id, domain.PermListNotes, ""); err != nil {
		return NoteList{}, err
	}

	f, page, err := normalizeListQuery(q)
	if err != nil {
		return NoteList{}, err
	}
	f.TenantID = id.TenantID

	total, err := s.Store.Notes().CountNotes(ctx, f.TenantID, f.Search)
	if err != nil {
		return NoteList{}, err
	}
	notes, err := s.Store.Notes().ListNotes(ctx, f)
	if err != nil {
		return NoteList{}, err
	}

	return NoteList{
		Notes:      notes,
		Pagination: domain.NewPagination(page, f.Limit, total),
	}, nil
}

func normalizeListQuery(q ListQuery) (domain.NoteFilter, int, error) {
	page := max(q.Page, 1)

	limit := q.Limit
	switch {
	case limit < 1:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	if page-1 > math.MaxInt/limit {
		return domain.NoteFilter{}, 0, domain.Invalid("page is out of range")
	}

	sortBy := domain.SortByCreatedAt
	if q.SortBy != "" {
		sortBy = domain.NoteSortField(q.SortBy)
		if !sortBy.Valid() {
			return domain.NoteFilter{}, 0, domain.Invalid("sortBy must be one of: createdAt, updatedAt, title")
		}
	}

	order := domain.SortDesc
	if q.SortOrder != "" {
		order = domain.SortOrder(strings.ToLower(q.SortOrder))
		if !order.Valid() {
			return domain.NoteFilter{}, 0, domain.Invalid("sortOrder must be one of: asc, desc")
		}
	}

	return domain.NoteFilter{
		Search:    strings.TrimSpace(q.Search),
		SortBy:    sortBy,
		SortOrder: order,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}, page, nil
}
