package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cfohub/cfohub/internal/hub/service"
	"github.com/cfohub/cfohub/internal/hub/store"
	"github.com/cfohub/cfohub/pkg/httpx"
	"github.com/cfohub/cfohub/pkg/jwtx"
	"github.com/cfohub/cfohub/pkg/slogx"

	_ "github.com/cfohub/cfohub/api/hub" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits groups the per-endpoint limiter instances. Each limiter keeps
// its own bucket map so the login and refresh budgets cannot starve each
// other.
type RateLimits struct {
	Login    *httpx.RateLimiter
	Refresh  *httpx.RateLimiter
	Register *httpx.RateLimiter
	General  *httpx.RateLimiter
}

// DefaultRateLimits returns the stock limits: 5 logins/min/IP, 10
// refreshes/min/IP, 3 registrations/hour/IP, and a lenient general budget
// for authenticated traffic.
func DefaultRateLimits() *RateLimits {
	return &RateLimits{
		Login: httpx.NewRateLimiter(httpx.RateLimitConfig{
			RequestsPerWindow: 5, Window: time.Minute, Burst: 5,
		}),
		Refresh: httpx.NewRateLimiter(httpx.RateLimitConfig{
			RequestsPerWindow: 10, Window: time.Minute, Burst: 10,
		}),
		Register: httpx.NewRateLimiter(httpx.RateLimitConfig{
			RequestsPerWindow: 3, Window: time.Hour, Burst: 3,
		}),
		General: httpx.NewRateLimiter(httpx.RateLimitConfig{
			RequestsPerWindow: 120, Window: time.Minute, Burst: 30,
		}),
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       *RateLimits

	store             store.Store
	AuthService       *service.AuthService
	UserService       *service.UserService
	PermissionService *service.PermissionService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	limits *RateLimits,
) *Router {
	if limits == nil {
		limits = DefaultRateLimits()
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		limits:       limits,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPermissions()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			CFO Hub Authentication Service API
//	@version		0.1.0
//	@description	Authentication and session management for the CFO Hub business platform:
//	@description	short-lived JWT access tokens with rotating single-use refresh tokens.
//
//	@contact.name	CFO Hub Team
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
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

// identity builds the authenticated chain: JWT verification, then the
// store-backed identity check that rejects deactivated accounts and pins the
// role to its current database value.
func (r *Router) identity(h http.Handler, mws ...httpx.Middleware) http.Handler {
	chain := append([]httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		IdentityMiddleware(r.store),
	}, mws...)
	return httpx.Chain(h, chain...)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(login, r.limits.Login.ByIP()),
	)

	refresh := &RefreshHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(refresh, r.limits.Refresh.ByIP()),
	)

	logout := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/logout",
		r.identity(logout, r.limits.General.ByUser()),
	)

	register := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(register, r.limits.Register.ByIP()),
	)

	changePassword := &ChangePasswordHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/auth/change-password",
		r.identity(changePassword, r.limits.General.ByUser()),
	)

	me := &MeHandler{}
	r.Mux.Handle("GET /v1/auth/me",
		r.identity(me, r.limits.General.ByUser()),
	)
}

func (r *Router) registerPermissions() {
	h := &PermissionsHandler{PermissionService: r.PermissionService}

	r.Mux.Handle("GET /v1/permissions/{role}",
		r.identity(http.HandlerFunc(h.HandleGet), r.limits.General.ByUser()),
	)

	// Editing feature flags is an admin operation.
	r.Mux.Handle("PUT /v1/permissions/{role}",
		r.identity(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireRole("admin"),
			r.limits.General.ByUser(),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), r.limits.General.ByIP()),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store), r.limits.General.ByIP()),
	)
}
