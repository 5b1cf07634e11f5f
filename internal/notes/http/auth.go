package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for an access token. tenantSlug is only
//	@Description	needed when the same credentials are valid in more than one organization.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	notesdk.Envelope[notesdk.AuthResponse]
//	@Failure		400		{object}	httpx.Envelope	"invalid input"
//	@Failure		401		{object}	httpx.Envelope	"invalid credentials"
//	@Failure		429		{object}	httpx.Envelope	"rate limited"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req notesdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.AuthService.Login(r.Context(), service.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		TenantSlug: req.TenantSlug,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, toAuthResponse(sess))
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	notesdk.Envelope[notesdk.MeResponse]
//	@Failure		401	{object}	httpx.Envelope
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		user, tenant, err := h.AuthService.Me(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, notesdk.MeResponse{
			User:   toUser(user),
			Tenant: toTenant(tenant),
		})
	})
}
