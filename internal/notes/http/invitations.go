package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleInvite godoc
//
//	@Summary		Invite user
//	@Description	Admin only. The returned token is shown once; pending invitations
//	@Description	count against the plan's user limit.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		notesdk.InviteRequest	true	"Invitee"
//	@Success		201		{object}	notesdk.Envelope[notesdk.InviteResponse]
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		403		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope	"user or pending invitation exists"
//	@Router			/users/invite [post].
func (h *InvitationsHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		var req notesdk.InviteRequest
		if !decodeBody(w, r, &req) {
			return
		}
		issued, err := h.InvitationService.Invite(r.Context(), id, service.InviteInput{Email: req.Email, Role: req.Role})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusCreated, notesdk.InviteResponse{
			Invitation: toInvitation(issued.Invitation),
			Token:      issued.Token,
			AcceptURL:  issued.AcceptURL,
		})
	})
}

// HandleListPending godoc
//
//	@Summary	List pending invitations
//	@Tags		Invitations
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	notesdk.Envelope[[]notesdk.Invitation]
//	@Failure	403	{object}	httpx.Envelope
//	@Router		/users/invitations [get].
func (h *InvitationsHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		invs, err := h.InvitationService.ListPending(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		out := make([]notesdk.Invitation, 0, len(invs))
		for _, inv := range invs {
			out = append(out, toInvitation(inv))
		}
		httpx.WriteSuccess(w, http.StatusOK, out)
	})
}

// HandleCancel godoc
//
//	@Summary	Cancel invitation
//	@Tags		Invitations
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Invitation ID"
//	@Success	200	{object}	notesdk.Envelope[notesdk.MessageResponse]
//	@Failure	400	{object}	httpx.Envelope	"not pending"
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/users/invitations/{id} [delete].
func (h *InvitationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		if err := h.InvitationService.Cancel(r.Context(), id, r.PathValue("id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, notesdk.MessageResponse{Message: "Invitation cancelled"})
	})
}

// HandleLookup godoc
//
//	@Summary		Inspect invitation
//	@Description	Shows what a token grants without redeeming it.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	query		string	true	"Invitation token"
//	@Success		200		{object}	notesdk.Envelope[notesdk.InvitationDetails]
//	@Failure		400		{object}	httpx.Envelope	"expired or no longer valid"
//	@Failure		404		{object}	httpx.Envelope
//	@Router			/users/invite/accept [get].
func (h *InvitationsHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		httpx.WriteError(w, http.StatusBadRequest, "token is required")
		return
	}
	d, err := h.InvitationService.Lookup(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, notesdk.InvitationDetails{
		Email:      d.Email,
		Role:       string(d.Role),
		TenantName: d.TenantName,
		TenantSlug: d.TenantSlug,
		ExpiresAt:  d.ExpiresAt,
	})
}

// HandleAccept godoc
//
//	@Summary		Accept invitation
//	@Description	Creates the account and returns a login session.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.AcceptInvitationRequest	true	"Token and password"
//	@Success		201		{object}	notesdk.Envelope[notesdk.AuthResponse]
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		404		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope
//	@Router			/users/invite/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var req notesdk.AcceptInvitationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := h.InvitationService.Accept(r.Context(), service.AcceptInput{Token: req.Token, Password: req.Password})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, toAuthResponse(sess))
}
