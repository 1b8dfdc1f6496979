package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SatyamKumarChoudhary/chat-bot/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, chat *handlers.ChatHandler, health *handlers.HealthHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/chat", chat.Chat)
}
