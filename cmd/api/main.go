package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "pannel_pintura/docs"
	"pannel_pintura/internal/adapter/http/routes"
	"pannel_pintura/internal/config"
	"pannel_pintura/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pannel Pintura API
// @version         1.0
// @description     Published painting rates, WhatsApp contact links and direct-contact leads backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Global().Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	if cfg.AdminToken == "" {
		logger.Global().Warn().Msg("ADMIN_TOKEN is empty, admin endpoints will reject every request")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		logger.Global().Fatal().Err(err).Msg("server stopped")
	}
}
