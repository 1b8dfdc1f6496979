package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/SatyamKumarChoudhary/chat-bot/api/http/presenter"
)

var allowedMethods = strings.Join([]string{
	fiber.MethodGet,
	fiber.MethodPost,
	fiber.MethodHead,
	fiber.MethodPut,
	fiber.MethodDelete,
	fiber.MethodPatch,
	fiber.MethodOptions,
}, ",")

// NewApp builds a Fiber app with the shared middleware stack.
// Routes are attached separately with Register.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "chat-bot",
		ErrorHandler: presenter.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	// Any origin may call the API, with credentials. Fiber refuses a literal
	// "*" together with credentials, so the request origin is reflected instead.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     allowedMethods,
		AllowCredentials: true,
	}))

	return app
}
