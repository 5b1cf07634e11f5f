package sqlite

import (
	"context"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite/gen"
)

type notesRepo struct {
	q *gen.Queries
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	err := r.q.CreateNote(ctx, gen.CreateNoteParams{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		AuthorID:  n.AuthorID,
		TenantID:  n.TenantID,
		CreatedAt: utc(n.CreatedAt),
		UpdatedAt: utc(n.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *notesRepo) GetNote(ctx context.Context, tenantID, id string) (domain.Note, error) {
	row, err := r.q.GetNote(ctx, gen.GetNoteParams{TenantID: tenantID, ID: id})
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return domain.Note{
		ID:          row.ID,
		Title:       row.Title,
		Content:     row.Content,
		AuthorID:    row.AuthorID,
		AuthorEmail: row.AuthorEmail,
		TenantID:    row.TenantID,
		CreatedAt:   utc(row.CreatedAt),
		UpdatedAt:   utc(row.UpdatedAt),
	}, nil
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	return notFoundIfNone(r.q.UpdateNote(ctx, gen.UpdateNoteParams{
		Title:     n.Title,
		Content:   n.Content,
		UpdatedAt: utc(n.UpdatedAt),
		TenantID:  n.TenantID,
		ID:        n.ID,
	}))
}

func (r *notesRepo) DeleteNote(ctx context.Context, tenantID, id string) error {
	return notFoundIfNone(r.q.DeleteNote(ctx, gen.DeleteNoteParams{TenantID: tenantID, ID: id}))
}

func (r *notesRepo) ListNotes(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error) {
	rows, err := r.q.ListNotes(ctx, gen.ListNotesParams{
		TenantID:  f.TenantID,
		Search:    f.Search,
		SortBy:    string(f.SortBy),
		SortOrder: string(f.SortOrder),
		Limit:     int64(f.Limit),
		Offset:    int64(f.Offset),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Note{
			ID:          row.ID,
			Title:       row.Title,
			Content:     row.Content,
			AuthorID:    row.AuthorID,
			AuthorEmail: row.AuthorEmail,
			TenantID:    row.TenantID,
			CreatedAt:   utc(row.CreatedAt),
			UpdatedAt:   utc(row.UpdatedAt),
		})
	}
	return out, nil
}

func (r *notesRepo) CountNotes(ctx context.Context, tenantID, search string) (int, error) {
	n, err := r.q.CountNotes(ctx, gen.CountNotesParams{TenantID: tenantID, Search: search})
	return int(n), err
}
