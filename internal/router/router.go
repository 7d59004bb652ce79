package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Nithish-ponnusamy/final-devops/internal/handler"
	"github.com/Nithish-ponnusamy/final-devops/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Profile *handler.ProfileHandler
	Channel *handler.ChannelHandler
	Chat    *handler.ChatHandler
	Auth    *handler.AuthHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewGlobalRateLimiter().Handler())

	// Health and metrics (outside the API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// Profile scraping (legacy path kept for the existing frontend)
	app.Post("/get_profile", h.Profile.GetProfile, middleware.NewScrapeRateLimiter().Handler())

	// Chat pass-through
	app.Post("/chat", h.Chat.Chat, middleware.NewChatRateLimiter().Handler())

	// API routes
	api := app.Group("/api")

	// Channel routes
	api.Get("/channel/:channelName", h.Channel.GetByName)

	// Auth routes
	authLimiter := middleware.NewAuthRateLimiter().Handler()
	api.Post("/auth/register", h.Auth.Register, authLimiter)
	api.Post("/auth/login", h.Auth.Login, authLimiter)
}
