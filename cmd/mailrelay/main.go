package main

import (
	"context"
	"gestao_comercial/internal/adapter/http/routes"
	"gestao_comercial/pkg/config"
	"gestao_comercial/pkg/logger"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// Mail relay: receives a composed quote from the api and delivers it over SMTP.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	lg := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.RunRelay(ctx, cfg, lg); err != nil {
		lg.Fatal().Err(err).Msg("mail relay stopped")
	}
	lg.Info().Msg("mail relay stopped")
}
