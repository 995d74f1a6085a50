package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vigilance-service/internal/api/http/handlers"
	"github.com/spec-kit/vigilance-service/internal/auth"
	apperrors "github.com/spec-kit/vigilance-service/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	AppName        string
	Version        string
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", indexHandler(cfg.AppName, cfg.Version))
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/auth/register", cfg.Auth.Register)
	api.Post("/auth/login", cfg.Auth.Login)

	reports := api.Group("/reports", cfg.AuthMiddleware.Handle)
	reports.Post("/", cfg.Reports.Create)
	reports.Get("/", cfg.Reports.List)
	// static path before the :id wildcard
	reports.Get("/stats", cfg.Reports.Stats)
	reports.Get("/:id", cfg.Reports.Get)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("Route not found")
	})
}

func indexHandler(appName, version string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": appName,
			"version": version,
			"endpoints": fiber.Map{
				"auth": fiber.Map{
					"register": "POST /api/auth/register",
					"login":    "POST /api/auth/login",
				},
				"reports": fiber.Map{
					"create": "POST /api/reports",
					"getAll": "GET /api/reports",
					"getOne": "GET /api/reports/:id",
					"stats":  "GET /api/reports/stats",
				},
			},
		})
	}
}
