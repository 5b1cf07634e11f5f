package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	notesdk.Envelope[[]notesdk.User]
//	@Failure	403	{object}	httpx.Envelope
//	@Router		/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	withIdentity(w, r, func(id domain.Identity) {
		users, err := h.UserService.List(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, toUsers(users))
	})
}
