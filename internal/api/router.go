package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"

	"github.com/swcatalog/film-manager/internal/api/handler"
	"github.com/swcatalog/film-manager/internal/api/middleware"
	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
	"github.com/swcatalog/film-manager/internal/core/token"
)

// route declares one endpoint together with its access policy. The guard
// consults this as plain data: public routes skip token verification
// entirely, everything else requires a valid token plus membership in the
// (non-hierarchical) role set.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	public  bool
	roles   []domain.Role
}

// Services groups the use-case implementations the router dispatches to.
type Services struct {
	Auth  ports.AuthService
	Users ports.UserService
	Films ports.FilmService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svcs Services, tokens *token.Manager, db *bun.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("filmmanager"))

	authHandler := handler.NewAuthHandler(svcs.Auth)
	userHandler := handler.NewUserHandler(svcs.Users)
	filmHandler := handler.NewFilmHandler(svcs.Films)
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db, rdb)

	admin := []domain.Role{domain.RoleAdmin}
	anyRole := []domain.Role{domain.RoleAdmin, domain.RoleUser}

	routes := []route{
		// Auth
		{method: echo.POST, path: "/api/auth/login", handler: authHandler.Login, public: true},
		{method: echo.POST, path: "/api/auth/register", handler: authHandler.Register, public: true},
		{method: echo.PATCH, path: "/api/auth/change-password", handler: authHandler.ChangePassword, roles: anyRole},

		// Films
		{method: echo.GET, path: "/api/films", handler: filmHandler.List, public: true},
		// USER-only on purpose: see the roles policy note in DESIGN.md.
		{method: echo.GET, path: "/api/films/:id", handler: filmHandler.Get, roles: []domain.Role{domain.RoleUser}},
		{method: echo.POST, path: "/api/films", handler: filmHandler.Create, roles: admin},
		{method: echo.POST, path: "/api/films/sync", handler: filmHandler.Sync, roles: admin},
		{method: echo.PUT, path: "/api/films/:id", handler: filmHandler.Update, roles: admin},
		{method: echo.DELETE, path: "/api/films/:id", handler: filmHandler.Remove, roles: admin},

		// Users (admin only)
		{method: echo.POST, path: "/api/users", handler: userHandler.Create, roles: admin},
		{method: echo.GET, path: "/api/users", handler: userHandler.List, roles: admin},
		{method: echo.GET, path: "/api/users/:id", handler: userHandler.Get, roles: admin},
		{method: echo.PUT, path: "/api/users/:id", handler: userHandler.Update, roles: admin},
		{method: echo.DELETE, path: "/api/users/:id", handler: userHandler.Remove, roles: admin},

		// Probes and metrics
		{method: echo.GET, path: "/health", handler: healthHandler.Liveness, public: true},
		{method: echo.GET, path: "/health/ready", handler: readyHandler.Readiness, public: true},
		{method: echo.GET, path: "/metrics", handler: echoprometheus.NewHandler(), public: true},
	}

	authRequired := middleware.Auth(tokens)
	for _, r := range routes {
		if r.public {
			e.Add(r.method, r.path, r.handler)
			continue
		}
		e.Add(r.method, r.path, r.handler, authRequired, middleware.RBAC(r.roles...))
	}

	return e
}
