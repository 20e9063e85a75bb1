package routes

import (
	"context"
	"fmt"
	"gestao_comercial/internal/adapter/http/handlers"
	"gestao_comercial/internal/adapter/persistence/memory"
	"gestao_comercial/internal/adapter/persistence/repository"
	"gestao_comercial/internal/infrastructure/database"
	"gestao_comercial/internal/infrastructure/export"
	"gestao_comercial/internal/infrastructure/lock"
	"gestao_comercial/internal/infrastructure/mail"
	"gestao_comercial/internal/infrastructure/payments"
	"gestao_comercial/internal/infrastructure/phone"
	"gestao_comercial/internal/infrastructure/printing"
	"gestao_comercial/internal/infrastructure/storage"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/internal/usecase/interfaces"
	"gestao_comercial/pkg/config"

	"github.com/rs/zerolog/log"
)

// Handlers groups every HTTP handler of the api.
type Handlers struct {
	Clients     *handlers.ClientHandler
	Quotes      *handlers.QuoteHandler
	Sales       *handlers.SaleHandler
	Contracts   *handlers.ContractHandler
	CostCenters *handlers.CostCenterHandler
	Invoices    *handlers.InvoiceHandler
	Receivables *handlers.ReceivableHandler
	Catalog     *handlers.CatalogHandler
	Tickets     *handlers.TicketHandler
}

type repositories struct {
	clients     interfaces.IClientRepository
	quotes      interfaces.IQuoteRepository
	sales       interfaces.ISaleRepository
	contracts   interfaces.IContractRepository
	costCenters interfaces.ICostCenterRepository
	invoices    interfaces.IInvoiceRepository
	receivables interfaces.IReceivableRepository
	tickets     interfaces.ITicketRepository
	banks       interfaces.IBankRepository
	products    interfaces.IProductRepository
	uow         interfaces.IUnitOfWork
}

func memoryRepositories() repositories {
	st := memory.NewStore()
	return repositories{
		clients:     memory.NewClientRepository(st),
		quotes:      memory.NewQuoteRepository(st),
		sales:       memory.NewSaleRepository(st),
		contracts:   memory.NewContractRepository(st),
		costCenters: memory.NewCostCenterRepository(st),
		invoices:    memory.NewInvoiceRepository(st),
		receivables: memory.NewReceivableRepository(st),
		tickets:     memory.NewTicketRepository(st),
		banks:       memory.NewBankRepository(st),
		products:    memory.NewProductRepository(st),
		uow:         memory.NewUnitOfWork(st),
	}
}

func dynamoRepositories(ddb repository.DynamoAPI, prefix string) repositories {
	return repositories{
		clients:     repository.NewClientDynamoRepository(ddb, prefix),
		quotes:      repository.NewQuoteDynamoRepository(ddb, prefix),
		sales:       repository.NewSaleDynamoRepository(ddb, prefix),
		contracts:   repository.NewContractDynamoRepository(ddb, prefix),
		costCenters: repository.NewCostCenterDynamoRepository(ddb, prefix),
		invoices:    repository.NewInvoiceDynamoRepository(ddb, prefix),
		receivables: repository.NewReceivableDynamoRepository(ddb, prefix),
		tickets:     repository.NewTicketDynamoRepository(ddb, prefix),
		banks:       repository.NewBankDynamoRepository(ddb, prefix),
		products:    repository.NewProductDynamoRepository(ddb, prefix),
		uow:         repository.NewDynamoUnitOfWork(ddb, prefix),
	}
}

// adapters are the optional outer collaborators. A nil field switches the
// matching feature off instead of failing startup.
type adapters struct {
	locker   interfaces.ILocker
	renderer interfaces.IDocumentRenderer
	exporter interfaces.IInvoiceExporter
	archive  interfaces.IDocumentArchive
	relay    interfaces.IMailRelayClient
	gateway  interfaces.IBankSlipGateway
}

func buildRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	if cfg.Store.Driver == "memory" {
		log.Warn().Str("component", "wiring").Msg("using the in-memory document store, data is lost on restart")
		return memoryRepositories(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return repositories{}, err
	}
	if cfg.AWS.DynamoDBEndpoint != "" {
		if err := database.EnsureTables(ctx, ddb, cfg.Store.TablePrefix); err != nil {
			return repositories{}, fmt.Errorf("ensure tables: %w", err)
		}
	}
	return dynamoRepositories(ddb, cfg.Store.TablePrefix), nil
}

func buildAdapters(ctx context.Context, cfg *config.Config) (adapters, error) {
	var a adapters

	if cfg.Redis.Address != "" {
		rdb, err := lock.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return adapters{}, err
		}
		a.locker = lock.NewRedisLocker(rdb)
	} else {
		log.Info().Str("component", "wiring").Msg("REDIS_ADDRESS not set, numbering locks are process local")
		a.locker = lock.NewLocalLocker()
	}

	renderer, err := printing.NewRenderer(cfg.App.Name)
	if err != nil {
		return adapters{}, err
	}
	a.renderer = renderer
	a.exporter = export.NewXLSXExporter()

	if cfg.Storage.Bucket != "" {
		awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
		if err != nil {
			return adapters{}, fmt.Errorf("s3 config: %w", err)
		}
		a.archive = storage.NewS3Archive(awsCfg, cfg.Storage.Bucket, cfg.Storage.Region)
	}

	if cfg.MailRel.URL != "" {
		a.relay = mail.NewRelayClient(cfg.MailRel.URL, nil)
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.Mock)
	if err != nil {
		log.Warn().Err(err).Str("component", "wiring").Msg("bank slip registration disabled")
	} else {
		a.gateway = gateway
	}
	return a, nil
}

// newHandlers wires the use cases over the chosen store.
func newHandlers(r repositories, a adapters) Handlers {
	costCenters := usecase.NewCostCenterUseCase(r.costCenters, r.clients, a.locker)

	quoteDeps := usecase.QuoteDeps{
		Quotes:      r.quotes,
		Clients:     r.clients,
		Sales:       r.sales,
		Contracts:   r.contracts,
		Tickets:     r.tickets,
		Banks:       r.banks,
		UnitOfWork:  r.uow,
		CostCenters: costCenters,
		Locker:      a.locker,
		Renderer:    a.renderer,
		Archive:     a.archive,
		MailRelay:   a.relay,
	}
	invoiceDeps := usecase.InvoiceDeps{
		Invoices:    r.invoices,
		Receivables: r.receivables,
		Contracts:   r.contracts,
		Sales:       r.sales,
		Clients:     r.clients,
		UnitOfWork:  r.uow,
		CostCenters: costCenters,
		Locker:      a.locker,
		Gateway:     a.gateway,
		Renderer:    a.renderer,
		Exporter:    a.exporter,
	}

	return Handlers{
		Clients:     handlers.NewClientHandler(usecase.NewClientUseCase(r.clients, costCenters, phone.Normalizer{})),
		Quotes:      handlers.NewQuoteHandler(usecase.NewQuoteUseCase(quoteDeps)),
		Sales:       handlers.NewSaleHandler(usecase.NewSaleUseCase(r.sales)),
		Contracts:   handlers.NewContractHandler(usecase.NewContractUseCase(r.contracts, r.clients, r.costCenters, r.banks, r.uow, costCenters, a.locker)),
		CostCenters: handlers.NewCostCenterHandler(costCenters),
		Invoices:    handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(invoiceDeps)),
		Receivables: handlers.NewReceivableHandler(usecase.NewReceivableUseCase(r.receivables, r.invoices, r.uow)),
		Catalog:     handlers.NewCatalogHandler(usecase.NewCatalogUseCase(r.banks, r.products)),
		Tickets:     handlers.NewTicketHandler(usecase.NewTicketUseCase(r.tickets, r.clients, a.locker)),
	}
}
