package routes

import (
	"context"
	"fmt"
	_ "gestao_comercial/docs" // swagger docs generated by swag init
	request "gestao_comercial/internal/adapter/http/dto/request"
	"gestao_comercial/internal/adapter/http/middleware"
	"gestao_comercial/pkg/config"
	"gestao_comercial/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the api against the configured store and serves HTTP until ctx
// ends.
func Run(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if err := request.RegisterValidators(); err != nil {
		return err
	}

	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("document store: %w", err)
	}
	adapters, err := buildAdapters(ctx, cfg)
	if err != nil {
		return err
	}

	router := NewRouter(newHandlers(repos, adapters), cfg.JWT.Secret, lg)

	log.Info().Str("addr", cfg.HTTP.Addr()).Str("store", cfg.Store.Driver).Msg("api listening")
	return serve(ctx, cfg.HTTP.Addr(), router)
}

// NewRouter registers every route. Everything under /v1 except ping needs a
// bearer token.
func NewRouter(h Handlers, jwtSecret string, lg *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(lg.GinMiddleware())
	router.Use(middleware.Recovery())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(middleware.Auth(jwtSecret))
	addClientRoutes(private, h.Clients)
	addQuoteRoutes(private, h.Quotes)
	addSaleRoutes(private, h.Sales)
	addContractRoutes(private, h.Contracts)
	addTicketRoutes(private, h.Tickets)
	addCatalogRoutes(private, h.Catalog)
	addBillingRoutes(private, h.CostCenters, h.Invoices, h.Receivables)

	return router
}
