package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/slogx"

	_ "github.com/aussiebroadwan/notes/api/notes" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	limits       httpx.RateLimitProfiles
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	NoteService         *service.NoteService
	SubscriptionService *service.SubscriptionService
	TenantService       *service.TenantService
	UserService         *service.UserService
	InvitationService   *service.InvitationService
}

func NewRouter(
	verifier jwtx.Verifier,
	limits httpx.RateLimitProfiles,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		limits:       limits,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		slogx.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		})),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerNotes()
	r.registerTenants()
	r.registerUsers()
	r.registerInvitations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Notes Service API
//	@version		0.1.0
//	@description	Multi-tenant notes with per-organization subscription plans.
//	@description
//	@description				Every response is wrapped in {"success": bool, "data"|"error": ...}.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/notes
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with authentication, an optional permission gate and a
// per-user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, perms ...domain.Permission) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	for _, p := range perms {
		mws = append(mws, RequirePermission(p))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/login - strict, bucketed by IP and submitted email
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.limits.Strict, "email"),
		),
	)
	r.Mux.Handle("GET /auth/me", r.secured(h.HandleMe, r.limits.Lenient))
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NoteService: r.NoteService}

	r.Mux.Handle("GET /notes", r.secured(h.HandleList, r.limits.Lenient, domain.PermListNotes))
	r.Mux.Handle("POST /notes", r.secured(h.HandleCreate, r.limits.Moderate, domain.PermCreateNote))
	r.Mux.Handle("GET /notes/{id}", r.secured(h.HandleGet, r.limits.Lenient, domain.PermReadNote))
	r.Mux.Handle("PUT /notes/{id}", r.secured(h.HandleUpdate, r.limits.Moderate, domain.PermUpdateNote))
	r.Mux.Handle("DELETE /notes/{id}", r.secured(h.HandleDelete, r.limits.Moderate, domain.PermDeleteNote))
}

func (r *Router) registerTenants() {
	h := &TenantsHandler{
		TenantService:       r.TenantService,
		SubscriptionService: r.SubscriptionService,
	}

	r.Mux.Handle("GET /tenants/{slug}", r.secured(h.HandleGet, r.limits.Lenient, domain.PermViewTenant))
	r.Mux.Handle("POST /tenants/{slug}/upgrade",
		r.secured(h.HandleUpgrade, r.limits.Moderate, domain.PermUpgradeSubscription))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /users", r.secured(h.HandleList, r.limits.Moderate, domain.PermViewUsers))
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	// Admin operations
	r.Mux.Handle("POST /users/invite", r.secured(h.HandleInvite, r.limits.Moderate, domain.PermInviteUsers))
	r.Mux.Handle("GET /users/invitations",
		r.secured(h.HandleListPending, r.limits.Moderate, domain.PermManageInvitations))
	r.Mux.Handle("DELETE /users/invitations/{id}",
		r.secured(h.HandleCancel, r.limits.Moderate, domain.PermManageInvitations))

	// Public signup endpoints - strict rate limit by IP
	r.Mux.Handle("GET /users/invite/accept",
		httpx.Chain(http.HandlerFunc(h.HandleLookup),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("POST /users/invite/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
}
