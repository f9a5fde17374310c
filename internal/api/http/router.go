package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/http/handlers"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/auth"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Site           *handlers.SiteHandler
	Services       *handlers.ServicesHandler
	Testimonials   *handlers.TestimonialsHandler
	Team           *handlers.TeamHandler
	Awards         *handlers.AwardsHandler
	Submissions    *handlers.SubmissionsHandler
	Bookings       *handlers.BookingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The /site group is public, /auth
// holds the admin session endpoints, and everything under /admin sits
// behind bearer authentication with per-route role floors.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	v1 := app.Group("/api/v1")

	site := v1.Group("/site")
	site.Get("/services", cfg.Site.Services)
	site.Get("/testimonials", cfg.Site.Testimonials)
	site.Get("/team", cfg.Site.Team)
	site.Get("/awards", cfg.Site.Awards)
	site.Post("/contact", cfg.Site.Contact)
	site.Post("/bookings", cfg.Site.BookCall)

	authGroup := v1.Group("/auth/admin")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/session", cfg.AuthMiddleware.Handle, cfg.Auth.Session)

	admin := v1.Group("/admin", cfg.AuthMiddleware.Handle)

	viewer := auth.RequireRole(domain.RoleViewer)
	editor := auth.RequireRole(domain.RoleEditor)
	administrator := auth.RequireRole(domain.RoleAdministrator)

	admin.Get("/services", viewer, cfg.Services.List)
	admin.Get("/services/:id", viewer, cfg.Services.Get)
	admin.Post("/services", editor, cfg.Services.Create)
	admin.Put("/services/:id", editor, cfg.Services.Update)
	admin.Delete("/services/:id", administrator, cfg.Services.Delete)

	admin.Get("/testimonials", viewer, cfg.Testimonials.List)
	admin.Post("/testimonials", editor, cfg.Testimonials.Create)
	admin.Put("/testimonials/:id", editor, cfg.Testimonials.Update)
	admin.Delete("/testimonials/:id", administrator, cfg.Testimonials.Delete)

	admin.Get("/team", viewer, cfg.Team.List)
	admin.Post("/team", editor, cfg.Team.Create)
	admin.Put("/team/:id", editor, cfg.Team.Update)
	admin.Delete("/team/:id", administrator, cfg.Team.Delete)

	admin.Get("/awards", viewer, cfg.Awards.List)
	admin.Post("/awards", editor, cfg.Awards.Create)
	admin.Put("/awards/:id", editor, cfg.Awards.Update)
	admin.Delete("/awards/:id", administrator, cfg.Awards.Delete)

	admin.Get("/submissions", viewer, cfg.Submissions.List)
	admin.Get("/submissions/:id", viewer, cfg.Submissions.Get)
	admin.Patch("/submissions/:id/status", editor, cfg.Submissions.UpdateStatus)
	admin.Delete("/submissions/:id", administrator, cfg.Submissions.Delete)

	admin.Get("/bookings", viewer, cfg.Bookings.List)
	admin.Get("/bookings/:id", viewer, cfg.Bookings.Get)
	admin.Patch("/bookings/:id/status", editor, cfg.Bookings.UpdateStatus)
	admin.Delete("/bookings/:id", administrator, cfg.Bookings.Delete)
}
