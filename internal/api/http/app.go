package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/buddy-service/internal/api/http/handlers"
	"github.com/spec-kit/buddy-service/internal/auth"
	"github.com/spec-kit/buddy-service/internal/config"
	"github.com/spec-kit/buddy-service/internal/events"
	"github.com/spec-kit/buddy-service/internal/observability"
	"github.com/spec-kit/buddy-service/internal/service"
)

// NewApp assembles the fiber application with every dependency wired.
func NewApp(cfg config.Config, logger *zap.Logger) *fiber.App {
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, logger, cfg.Notification).RegisterHandlers()

	matchingService := service.NewMatchingService(service.MatchingDependencies{
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
		Config:     cfg.Matching,
	})

	var tokens *auth.TokenManager
	if cfg.Auth.Enabled() {
		tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	}

	fiberCfg := fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	}
	if cfg.Matching.MaxUploadBytes > 0 {
		fiberCfg.BodyLimit = cfg.Matching.MaxUploadBytes
	}
	app := fiber.New(fiberCfg)
	RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics),
		Matches:        handlers.NewMatchesHandler(matchingService),
		Exports:        handlers.NewExportsHandler(),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
	})
	return app
}
