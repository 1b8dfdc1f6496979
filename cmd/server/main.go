// @title         chat-bot API
// @version       1.0
// @description   Relays a prompt to a Claude model on AWS Bedrock and returns the generated text.
// @BasePath      /
// @schemes       http
// @host          127.0.0.1:8000
package main

import (
	"context"
	"log"

	swagger "github.com/gofiber/swagger"

	_ "github.com/SatyamKumarChoudhary/chat-bot/docs"

	// internal imports
	"github.com/SatyamKumarChoudhary/chat-bot/api/http"
	"github.com/SatyamKumarChoudhary/chat-bot/api/http/handlers"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/chat"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/config"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/health"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/health/checkers"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/llm/bedrock"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	// One Bedrock client for the whole process; credentials come from the default AWS chain.
	awsCfg, err := bedrock.LoadAWSConfig(context.Background(), cfg.AWSRegion)
	if err != nil {
		log.Fatalf("aws config: %v", err)
	}
	llmClient := bedrock.NewFromConfig(awsCfg, cfg.ModelID)

	// Wire dependencies (Clean Architecture)
	chatUC := chat.NewService(llmClient)
	chatHandler := handlers.NewChatHandler(chatUC)

	readiness := health.NewService(checkers.NewCredentialsChecker(awsCfg.Credentials))
	healthHandler := handlers.NewHealthHandler(readiness)

	app := http.NewApp()
	http.Register(app, chatHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	addr := cfg.Addr()
	log.Printf("HTTP server listening on %s (model %s, region %s)", addr, cfg.ModelID, cfg.AWSRegion)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
