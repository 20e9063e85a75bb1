package routes

import (
	"gestao_comercial/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCostCenters = "/cost-centers"
	PathInvoices    = "/invoices"
	PathReceivables = "/receivables"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	costCenterHandler *handlers.CostCenterHandler,
	invoiceHandler *handlers.InvoiceHandler,
	receivableHandler *handlers.ReceivableHandler,
) {
	costCenters := rg.Group(PathCostCenters)
	{
		costCenters.GET("", costCenterHandler.ListCostCenters)
		costCenters.PATCH("/:id/active", costCenterHandler.SetCostCenterActive)
	}

	invoices := rg.Group(PathInvoices)
	{
		// Static segments before /:id.
		invoices.GET("/candidates", invoiceHandler.ListCandidates)
		invoices.POST("/generate", invoiceHandler.GenerateInvoices)
		invoices.GET("/export", invoiceHandler.ExportInvoices)

		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.ChangeInvoiceStatus)
		invoices.POST("/:id/register", invoiceHandler.RegisterInvoice)
		invoices.GET("/:id/print", invoiceHandler.PrintInvoice)
	}

	receivables := rg.Group(PathReceivables)
	{
		receivables.GET("", receivableHandler.ListReceivables)
		receivables.PATCH("/:id/settle", receivableHandler.SettleReceivable)
	}
}
