package routes

import (
	"gestao_comercial/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathQuotes    = "/quotes/:kind"
	PathSales     = "/sales"
	PathContracts = "/contracts"
	PathTickets   = "/tickets"
	PathBanks     = "/banks"
	PathProducts  = "/products"
)

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)

		clients.POST("/:id/contacts", h.AddContact)
		clients.GET("/:id/contacts", h.ListContacts)
		clients.PATCH("/:id/contacts/:contactId/primary", h.SetPrimaryContact)

		clients.POST("/:id/equipments", h.AddEquipment)
		clients.GET("/:id/equipments", h.ListEquipments)
	}
}

// addQuoteRoutes serves both collections; :kind is equipamentos or contratos.
func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id", h.UpdateQuote)
		quotes.PATCH("/:id/send", h.SendQuote)
		quotes.PATCH("/:id/approve", h.ApproveQuote)
		quotes.PATCH("/:id/reject", h.RejectQuote)
		quotes.GET("/:id/print", h.PrintQuote)
		quotes.GET("/:id/pdf", h.QuotePDF)
		quotes.POST("/:id/email", h.EmailQuote)
	}
}

func addSaleRoutes(rg *gin.RouterGroup, h *handlers.SaleHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("", h.ListSales)
		sales.GET("/:id", h.GetSale)
	}
}

func addContractRoutes(rg *gin.RouterGroup, h *handlers.ContractHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", h.CreateContract)
		contracts.GET("", h.ListContracts)
		contracts.GET("/:id", h.GetContract)
		contracts.PUT("/:id", h.UpdateContract)
		contracts.PATCH("/:id/status", h.ChangeContractStatus)
		contracts.PATCH("/:id/situacao", h.ChangeContractSituation)
	}
}

func addTicketRoutes(rg *gin.RouterGroup, h *handlers.TicketHandler) {
	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", h.CreateTicket)
		tickets.GET("", h.ListTickets)
		tickets.GET("/:id", h.GetTicket)
		tickets.PATCH("/:id/status", h.ChangeTicketStatus)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	banks := rg.Group(PathBanks)
	{
		banks.POST("", h.CreateBank)
		banks.GET("", h.ListBanks)
		banks.GET("/:id", h.GetBank)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
	}
}
