package routes

import (
	"context"
	"gestao_comercial/internal/adapter/http/handlers"
	"gestao_comercial/internal/adapter/http/middleware"
	"gestao_comercial/internal/infrastructure/mail"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/pkg/config"
	"gestao_comercial/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RunRelay wires the SMTP mail relay and serves it until ctx ends.
func RunRelay(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	if cfg.SMTP.Host == "" {
		lg.Warn().Msg("SMTP_HOST not set, every delivery will fail")
	}

	sender := mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From)
	h := handlers.NewMailRelayHandler(usecase.NewMailRelayUseCase(sender, mail.Composer{}, ""))

	lg.Info().Str("addr", cfg.HTTP.RelayAddr()).Msg("mail relay listening")
	return serve(ctx, cfg.HTTP.RelayAddr(), NewRelayRouter(h, lg))
}

// NewRelayRouter serves the mail relay binary. It has no auth: it is meant
// to sit next to the api on a private network.
func NewRelayRouter(h *handlers.MailRelayHandler, lg *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(lg.GinMiddleware())
	router.Use(middleware.Recovery())

	router.GET("/", h.Health)
	router.POST("/api/send-orcamento", h.SendQuote)
	return router
}
