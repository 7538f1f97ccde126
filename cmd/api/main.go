package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "taller_jaison/docs"
	"taller_jaison/internal/adapter/http/routes"
	"taller_jaison/internal/infrastructure/config"
	"taller_jaison/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Taller Jaison API
// @version         1.0
// @description     Service orders, payments ledger and shareable receipts for an auto repair shop.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, lg); err != nil {
		lg.Error("Failed to run the application", zap.Error(err))
		stop()
		_ = lg.Sync()
		os.Exit(1)
	}
}
