package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bankqueue/queue-service/internal/api/http/handlers"
	"github.com/bankqueue/queue-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	api := app.Group("/api")
	api.Post("/users/register", cfg.Users.Register)

	users := api.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/me", cfg.Users.GetProfile)
	users.Patch("/me", cfg.Users.UpdateProfile)
	users.Delete("/me", cfg.Users.DeleteProfile)
	users.Post("/me/change-password", cfg.Users.ChangePassword)
	users.Get("/me/logs", cfg.Users.ListLogs)

	tickets := api.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Patch("/:id", cfg.Tickets.UpdateTicket)
	tickets.Delete("/:id", cfg.Tickets.DeleteTicket)
}
