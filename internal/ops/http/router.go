package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/jwtx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"

	_ "github.com/prakarsateknik/opsdesk/api/opsdesk" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     *jwtx.EdDSAVerifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService          *service.AuthService
	ProfileService       *service.ProfileService
	CustomerService      *service.CustomerService
	ItemService          *service.ItemService
	PurchaseOrderService *service.PurchaseOrderService
	ProductionService    *service.ProductionService
	ReferenceService     *service.ReferenceService
	NotificationService  *service.NotificationService
	Feed                 *service.Feed
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier *jwtx.EdDSAVerifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMenu()
	r.registerStaff()
	r.registerCustomers()
	r.registerItems()
	r.registerPurchaseOrders()
	r.registerProduction()
	r.registerReference()
	r.registerNotifications()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OpsDesk Dashboard API
//	@version		0.1.0
//	@description	Backend for the manufacturing operations dashboard: staff accounts, purchase orders, customers, items, the production log, and director notifications.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				Prakarsa Teknik
//	@contact.url				https://github.com/prakarsateknik/opsdesk
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

// requireProfile rejects tokens whose profile no longer exists. A deleted
// staff member may still hold an unexpired access token; without this their
// requests would keep working until expiry.
func (r *Router) requireProfile() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			userID := httpx.UserIDFromCtx(ctx)
			if userID == "" {
				opsdk.ErrInvalidToken.WriteError(w)
				return
			}
			if _, err := r.ProfileService.GetProfileByID(ctx, userID); err != nil {
				slogx.FromContext(ctx).Warn("token subject has no profile", "user_id", userID)
				opsdk.ErrInvalidToken.WriteError(w)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

// secured wraps a handler with the standard authenticated chain: token
// verification, profile resolution, an optional role gate, and a per-user
// rate limit. An empty roles list admits every authenticated role.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, roles ...string) http.Handler {
	mws := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		r.requireProfile(),
	}
	if len(roles) > 0 {
		mws = append(mws, httpx.RequireRoles(service.PageAllowed, roles...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))

	return httpx.Chain(h, mws...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Strict limits by IP: these are the brute-forceable endpoints.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		r.secured(http.HandlerFunc(h.HandleLogout), httpx.ModerateLimit),
	)

	userInfo := &UserInfoHandler{ProfileService: r.ProfileService}
	r.Mux.Handle("GET /v1/userinfo", r.secured(userInfo, httpx.LenientLimit))
}

func (r *Router) registerMenu() {
	r.Mux.Handle("GET /v1/menu", r.secured(MenuHandler(), httpx.LenientLimit))
}

func (r *Router) registerStaff() {
	h := &StaffHandler{ProfileService: r.ProfileService}

	staffRoles := []string{domain.RoleAdmin, domain.RoleDirektur}

	r.Mux.Handle("GET /v1/staff",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit, staffRoles...))
	r.Mux.Handle("POST /v1/staff",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, staffRoles...))
	r.Mux.Handle("PATCH /v1/staff/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, staffRoles...))
	r.Mux.Handle("DELETE /v1/staff/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, staffRoles...))

	// The sales dropdown feeds the purchase order form, so it follows the
	// sales page gate rather than the staff admin gate.
	r.Mux.Handle("GET /v1/sales",
		r.secured(http.HandlerFunc(h.HandleListSales), httpx.LenientLimit, salesPageRoles()...))
}

// salesPageRoles gates the sales-facing pages. Sales passes through the
// Marketing grant, Direktur through the bypass.
func salesPageRoles() []string {
	return []string{domain.RoleMarketing, domain.RoleAdmin, domain.RoleDirektur}
}

// productionPageRoles gates the production pages.
func productionPageRoles() []string {
	return []string{domain.RoleProduksi, domain.RoleAdmin, domain.RoleDirektur}
}

func (r *Router) registerCustomers() {
	h := &CustomersHandler{CustomerService: r.CustomerService}
	roles := salesPageRoles()

	r.Mux.Handle("GET /v1/customers",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/customers/search",
		r.secured(http.HandlerFunc(h.HandleSearch), httpx.LenientLimit, roles...))
	r.Mux.Handle("POST /v1/customers",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, roles...))
	r.Mux.Handle("PUT /v1/customers/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, roles...))
	r.Mux.Handle("DELETE /v1/customers/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, roles...))
}

func (r *Router) registerItems() {
	h := &ItemsHandler{ItemService: r.ItemService}
	roles := salesPageRoles()

	r.Mux.Handle("GET /v1/items",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/items/search",
		r.secured(http.HandlerFunc(h.HandleSearch), httpx.LenientLimit, roles...))
	r.Mux.Handle("POST /v1/items",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, roles...))
	r.Mux.Handle("PUT /v1/items/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, roles...))
	r.Mux.Handle("DELETE /v1/items/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, roles...))

	// The production entry form resolves items by exact part assy, so this
	// lookup follows the production gate.
	r.Mux.Handle("GET /v1/items/by-part-assy",
		r.secured(http.HandlerFunc(h.HandleByPartAssy), httpx.LenientLimit, productionPageRoles()...))
}

func (r *Router) registerPurchaseOrders() {
	h := &PurchaseOrdersHandler{PurchaseOrderService: r.PurchaseOrderService}
	roles := salesPageRoles()

	r.Mux.Handle("GET /v1/purchase-orders",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit, roles...))
	r.Mux.Handle("POST /v1/purchase-orders",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, roles...))
	r.Mux.Handle("PUT /v1/purchase-orders/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, roles...))
	r.Mux.Handle("DELETE /v1/purchase-orders/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, roles...))
}

func (r *Router) registerProduction() {
	h := &ProductionHandler{ProductionService: r.ProductionService}
	roles := productionPageRoles()

	r.Mux.Handle("GET /v1/production",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit, roles...))
	r.Mux.Handle("POST /v1/production",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, roles...))
	r.Mux.Handle("PUT /v1/production/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, roles...))
	r.Mux.Handle("DELETE /v1/production/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, roles...))
}

func (r *Router) registerReference() {
	h := &ReferenceHandler{ReferenceService: r.ReferenceService}
	roles := productionPageRoles()

	r.Mux.Handle("GET /v1/machines",
		r.secured(http.HandlerFunc(h.HandleListMachines), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/operators",
		r.secured(http.HandlerFunc(h.HandleListOperators), httpx.LenientLimit, roles...))

	r.Mux.Handle("GET /v1/reference/operators",
		r.secured(http.HandlerFunc(h.HandleDistinctOperators), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/reference/machines",
		r.secured(http.HandlerFunc(h.HandleDistinctMachines), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/reference/qc-lines",
		r.secured(http.HandlerFunc(h.HandleDistinctQCLines), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/reference/part-assy",
		r.secured(http.HandlerFunc(h.HandleDistinctPartAssy), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/reference/part-names",
		r.secured(http.HandlerFunc(h.HandleDistinctPartNames), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/reference/processes",
		r.secured(http.HandlerFunc(h.HandleDistinctProcesses), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/reference/part-details",
		r.secured(http.HandlerFunc(h.HandlePartDetails), httpx.LenientLimit, roles...))
}

func (r *Router) registerNotifications() {
	h := &NotificationsHandler{NotificationService: r.NotificationService}
	stream := &NotificationsStreamHandler{Feed: r.Feed}

	roles := []string{domain.RoleDirektur}

	r.Mux.Handle("GET /v1/notifications",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit, roles...))
	r.Mux.Handle("GET /v1/notifications/unread-count",
		r.secured(http.HandlerFunc(h.HandleUnreadCount), httpx.LenientLimit, roles...))
	r.Mux.Handle("POST /v1/notifications/{id}/read",
		r.secured(http.HandlerFunc(h.HandleMarkRead), httpx.ModerateLimit, roles...))
	r.Mux.Handle("POST /v1/notifications/read-all",
		r.secured(http.HandlerFunc(h.HandleMarkAllRead), httpx.ModerateLimit, roles...))
	r.Mux.Handle("DELETE /v1/notifications",
		r.secured(http.HandlerFunc(h.HandleClearAll), httpx.ModerateLimit, roles...))
	r.Mux.Handle("GET /v1/notifications/stream",
		r.secured(stream, httpx.LenientLimit, roles...))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.buildVersion, r.startTime),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.store, r.keys, r.buildVersion, r.startTime),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
