package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type TenantsHandler struct {
	TenantService       *service.TenantService
	SubscriptionService *service.SubscriptionService
}

// HandleGet godoc
//
//	@Summary		Get organization
//	@Description	The caller's organization with plan usage. Other slugs are not found.
//	@Tags			Tenants
//	@Produce		json
//	@Security		BearerAuth
//	@Param			slug	path		string	true	"Tenant slug"
//	@Success		200		{object}	notesdk.Envelope[notesdk.TenantResponse]
//	@Failure		404		{object}	httpx.Envelope
//	@Router			/tenants/{slug} [get].
func (h *TenantsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		ov, err := h.TenantService.Get(r.Context(), id, r.PathValue("slug"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, notesdk.TenantResponse{
			Tenant: toTenant(ov.Tenant),
			Usage:  toUsage(ov.Usage),
		})
	})
}

// HandleUpgrade godoc
//
//	@Summary		Upgrade to Pro
//	@Description	Admin only. Lifts the note limit. Upgrading a Pro organization is a no-op.
//	@Tags			Tenants
//	@Produce		json
//	@Security		BearerAuth
//	@Param			slug	path		string	true	"Tenant slug"
//	@Success		200		{object}	notesdk.Envelope[notesdk.UpgradeResponse]
//	@Failure		403		{object}	httpx.Envelope
//	@Router			/tenants/{slug}/upgrade [post].
func (h *TenantsHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		t, err := h.SubscriptionService.Upgrade(r.Context(), id, r.PathValue("slug"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, notesdk.UpgradeResponse{
			Tenant:  toTenant(t),
			Message: "Subscription upgraded to Pro plan",
		})
	})
}
