package handlers

import (
	"bytes"
	"errors"
	"fmt"
	request "gestao_comercial/internal/adapter/http/dto/request"
	response "gestao_comercial/internal/adapter/http/dto/response"
	"gestao_comercial/internal/adapter/http/middleware"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceHandler serves the monthly boleto screens.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ListCandidates godoc
// @Summary      Invoice candidates of a month
// @Description  Contracts in force without an open invoice for the month and pending sales paid by boleto.
// @Tags         invoices
// @Produce      json
// @Param        mes  query    string  true  "Reference month (YYYY-MM)"
// @Success      200  {array}  response.InvoiceCandidateResponse
// @Failure      400  {object} pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/candidates [get]
func (h *InvoiceHandler) ListCandidates(c *gin.Context) {
	var query request.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, err)
		return
	}
	list, err := h.usecase.ListCandidates(c.Request.Context(), middleware.Session(c), query.Month)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCandidates(list))
}

// GenerateInvoices godoc
// @Summary      Generate invoices
// @Description  Numbers BOL-YYMM##### in selection order. Stops on the first failure and reports what was generated before it.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        selection  body      request.GenerateInvoicesRequest  true  "Selection"
// @Success      201        {object}  response.GenerationResponse
// @Failure      422        {object}  response.GenerationResponse
// @Security     Bearer
// @Router       /invoices/generate [post]
func (h *InvoiceHandler) GenerateInvoices(c *gin.Context) {
	var payload request.GenerateInvoicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.usecase.Generate(c.Request.Context(), middleware.Session(c), payload.Month, payload.ToItems())
	if err != nil && len(res.Invoices) == 0 {
		writeError(c, mapInvoiceError(err))
		return
	}
	if err != nil {
		c.JSON(mapInvoiceError(err).HTTPStatus, response.FromGeneration(res, err))
		return
	}
	c.JSON(http.StatusCreated, response.FromGeneration(res, nil))
}

// ListInvoices godoc
// @Summary      Invoices of a month
// @Tags         invoices
// @Produce      json
// @Param        mes  query    string  true  "Reference month (YYYY-MM)"
// @Success      200  {array}  entities.Invoice
// @Security     Bearer
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var query request.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, err)
		return
	}
	list, err := h.usecase.List(c.Request.Context(), middleware.Session(c), query.Month)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetInvoice godoc
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  entities.Invoice
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ChangeInvoiceStatus godoc
// @Summary      Change invoice status
// @Description  pago also settles the paired receivable; cancelado cancels it.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path      string                        true  "Invoice ID"
// @Param        status  body      request.InvoiceStatusRequest  true  "Status"
// @Success      200     {object}  entities.Invoice
// @Failure      409     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/status [patch]
func (h *InvoiceHandler) ChangeInvoiceStatus(c *gin.Context) {
	var payload request.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	inv, err := h.usecase.ChangeStatus(c.Request.Context(), middleware.Session(c), c.Param("id"), payload.ToStatus())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, inv)
}

// DeleteInvoice godoc
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterInvoice registers the boleto at the payment gateway.
// @Summary      Register boleto with the bank
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  entities.Invoice
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/register [post]
func (h *InvoiceHandler) RegisterInvoice(c *gin.Context) {
	inv, err := h.usecase.RegisterWithBank(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, inv)
}

// PrintInvoice godoc
// @Summary      Printable boleto
// @Tags         invoices
// @Produce      html
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {string}  string
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/print [get]
func (h *InvoiceHandler) PrintInvoice(c *gin.Context) {
	html, err := h.usecase.RenderHTML(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportInvoices godoc
// @Summary      Export the invoices of a month
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        mes  query  string  true  "Reference month (YYYY-MM)"
// @Success      200
// @Security     Bearer
// @Router       /invoices/export [get]
func (h *InvoiceHandler) ExportInvoices(c *gin.Context) {
	var query request.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.usecase.ExportXLSX(c.Request.Context(), middleware.Session(c), query.Month, &buf); err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="boletos_%s.xlsx"`, query.Month))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidMonth),
		errors.Is(err, usecase.ErrInvalidInvoiceStatus), errors.Is(err, usecase.ErrNoGenerationItems),
		errors.Is(err, usecase.ErrInvalidGenerationItem):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound), errors.Is(err, usecase.ErrSaleNotFound),
		errors.Is(err, usecase.ErrItemNotEligible):
		return pkg.NewDomainError("ITEM_NOT_ELIGIBLE", "Selected item cannot be invoiced", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidInvoiceTransition), errors.Is(err, usecase.ErrInvoiceNotDeletable),
		errors.Is(err, usecase.ErrInvoiceAlreadyRegistered):
		return pkg.NewDomainError("INVALID_INVOICE_STATUS", "Operation not allowed in the current invoice status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrBankGatewayNotConfigured), errors.Is(err, usecase.ErrExporterNotConfigured),
		errors.Is(err, usecase.ErrRendererMissing):
		return pkg.NewDomainError("NOT_CONFIGURED", "Feature not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBankRegistrationFailed):
		return pkg.NewDomainError("BANK_REGISTRATION_ERROR", "Bank slip registration failed", err, http.StatusBadGateway)
	default:
		return mapCommonError(err)
	}
}
