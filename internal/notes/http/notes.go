package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type NotesHandler struct {
	NoteService *service.NoteService
}

// HandleList godoc
//
//	@Summary		List notes
//	@Description	Paginated notes of the caller's organization. search matches title or
//	@Description	content case-insensitively.
//	@Tags			Notes
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page		query		int		false	"Page, from 1"					default(1)
//	@Param			limit		query		int		false	"Page size, at most 100"		default(10)
//	@Param			search		query		string	false	"Substring to match"
//	@Param			sortBy		query		string	false	"Sort field"					Enums(createdAt, updatedAt, title)
//	@Param			sortOrder	query		string	false	"Sort direction"				Enums(asc, desc)
//	@Success		200			{object}	notesdk.Envelope[notesdk.NoteListResponse]
//	@Failure		400			{object}	httpx.Envelope
//	@Failure		401			{object}	httpx.Envelope
//	@Router			/notes [get].
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		q, err := parseListQuery(r.URL.Query())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		list, err := h.NoteService.List(r.Context(), id, q)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, toNoteList(list))
	})
}

func parseListQuery(v url.Values) (service.ListQuery, error) {
	page, err := intParam(v, "page")
	if err != nil {
		return service.ListQuery{}, err
	}
	limit, err := intParam(v, "limit")
	if err != nil {
		return service.ListQuery{}, err
	}
	return service.ListQuery{
		Page:      page,
		Limit:     limit,
		Search:    v.Get("search"),
		SortBy:    v.Get("sortBy"),
		SortOrder: v.Get("sortOrder"),
	}, nil
}

// intParam reads an optional integer query parameter; absent is zero.
func intParam(v url.Values, name string) (int, error) {
	raw := v.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Invalidf("%s must be an integer", name)
	}
	return n, nil
}

// HandleCreate godoc
//
//	@Summary		Create note
//	@Description	FREE organizations are limited to 3 notes.
//	@Tags			Notes
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		notesdk.NoteRequest	true	"Note"
//	@Success		201		{object}	notesdk.Envelope[notesdk.Note]
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		403		{object}	httpx.Envelope	"plan limit reached"
//	@Router			/notes [post].
func (h *NotesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		var req notesdk.NoteRequest
		if !decodeBody(w, r, &req) {
			return
		}
		n, err := h.NoteService.Create(r.Context(), id, service.NoteInput{Title: req.Title, Content: req.Content})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusCreated, toNote(n))
	})
}

// HandleGet godoc
//
//	@Summary	Get note
//	@Tags		Notes
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Note ID"
//	@Success	200	{object}	notesdk.Envelope[notesdk.Note]
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/notes/{id} [get].
func (h *NotesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		n, err := h.NoteService.Get(r.Context(), id, r.PathValue("id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, toNote(n))
	})
}

// HandleUpdate godoc
//
//	@Summary		Update note
//	@Description	Members may only update their own notes.
//	@Tags			Notes
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Note ID"
//	@Param			body	body		notesdk.NoteRequest	true	"Note"
//	@Success		200		{object}	notesdk.Envelope[notesdk.Note]
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		403		{object}	httpx.Envelope
//	@Failure		404		{object}	httpx.Envelope
//	@Router			/notes/{id} [put].
func (h *NotesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		var req notesdk.NoteRequest
		if !decodeBody(w, r, &req) {
			return
		}
		n, err := h.NoteService.Update(r.Context(), id, r.PathValue("id"),
			service.NoteInput{Title: req.Title, Content: req.Content})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, toNote(n))
	})
}

// HandleDelete godoc
//
//	@Summary		Delete note
//	@Description	Members may only delete their own notes.
//	@Tags			Notes
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Note ID"
//	@Success		200	{object}	notesdk.Envelope[notesdk.MessageResponse]
//	@Failure		403	{object}	httpx.Envelope
//	@Failure		404	{object}	httpx.Envelope
//	@Router			/notes/{id} [delete].
func (h *NotesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		if err := h.NoteService.Delete(r.Context(), id, r.PathValue("id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, notesdk.MessageResponse{Message: "Note deleted"})
	})
}
