package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/buddy-service/internal/api/http/handlers"
	"github.com/spec-kit/buddy-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Matches        *handlers.MatchesHandler
	Exports        *handlers.ExportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	v1 := app.Group("/v1", cfg.AuthMiddleware.Handle)
	v1.Post("/matches", cfg.Matches.Create)
	v1.Post("/exports/:format", cfg.Exports.Download)
}
