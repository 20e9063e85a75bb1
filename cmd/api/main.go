package main

import (
	"context"
	_ "gestao_comercial/docs"
	"gestao_comercial/internal/adapter/http/routes"
	"gestao_comercial/pkg/config"
	"gestao_comercial/pkg/logger"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Gestão Comercial API
// @version         1.0
// @description     Clients, quotes, contracts, cost centers, boletos and receivables.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	lg := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, lg); err != nil {
		lg.Fatal().Err(err).Msg("api stopped")
	}
	lg.Info().Msg("api stopped")
}
