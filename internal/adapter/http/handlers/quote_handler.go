package handlers

import (
	"errors"
	"fmt"
	request "gestao_comercial/internal/adapter/http/dto/request"
	response "gestao_comercial/internal/adapter/http/dto/response"
	"gestao_comercial/internal/adapter/http/middleware"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errUnknownQuoteKind = pkg.NewDomainErrorSimple("QUOTE_KIND_NOT_FOUND", "Quote kind must be equipamentos or contratos", http.StatusNotFound)

// quoteKinds maps the plural path segment to the quote collection.
var quoteKinds = map[string]entities.QuoteKind{
	"equipamentos": entities.QuoteKindEquipment,
	"contratos":    entities.QuoteKindContract,
}

// QuoteHandler serves both quote kinds under /quotes/:kind.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func quoteKind(c *gin.Context) (entities.QuoteKind, bool) {
	kind, ok := quoteKinds[c.Param("kind")]
	if !ok {
		writeError(c, errUnknownQuoteKind)
	}
	return kind, ok
}

// CreateQuote godoc
// @Summary      Create quote
// @Description  Numbers the quote ORC-YYMM##### and stores it as em_elaboracao.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        kind   path      string                true  "equipamentos or contratos"
// @Param        quote  body      request.QuoteRequest  true  "Quote"
// @Success      201    {object}  entities.Quote
// @Failure      400    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{kind} [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	in, ok := bindQuote(c)
	if !ok {
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), middleware.Session(c), kind, in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, quote)
}

// UpdateQuote godoc
// @Summary      Update quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        kind   path      string                true  "equipamentos or contratos"
// @Param        id     path      string                true  "Quote ID"
// @Param        quote  body      request.QuoteRequest  true  "Quote"
// @Success      200    {object}  entities.Quote
// @Failure      409    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{kind}/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	in, ok := bindQuote(c)
	if !ok {
		return
	}

	quote, err := h.usecase.Update(c.Request.Context(), middleware.Session(c), kind, c.Param("id"), in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, quote)
}

func bindQuote(c *gin.Context) (usecase.QuoteInput, bool) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return usecase.QuoteInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return usecase.QuoteInput{}, false
	}
	return in, true
}

// GetQuote godoc
// @Summary      Get quote
// @Tags         quotes
// @Produce      json
// @Param        kind  path      string  true  "equipamentos or contratos"
// @Param        id    path      string  true  "Quote ID"
// @Success      200   {object}  entities.Quote
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{kind}/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	quote, err := h.usecase.GetByID(c.Request.Context(), middleware.Session(c), kind, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ListQuotes godoc
// @Summary      List quotes of a kind
// @Tags         quotes
// @Produce      json
// @Param        kind  path     string  true  "equipamentos or contratos"
// @Success      200   {array}  entities.Quote
// @Security     Bearer
// @Router       /quotes/{kind} [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	quotes, err := h.usecase.List(c.Request.Context(), middleware.Session(c), kind)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// SendQuote marks the quote as handed to the client outside of the mail relay.
// @Summary      Mark quote as sent
// @Tags         quotes
// @Produce      json
// @Param        kind  path      string  true  "equipamentos or contratos"
// @Param        id    path      string  true  "Quote ID"
// @Success      200   {object}  entities.Quote
// @Security     Bearer
// @Router       /quotes/{kind}/{id}/send [patch]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	quote, err := h.usecase.MarkSent(c.Request.Context(), middleware.Session(c), kind, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ApproveQuote godoc
// @Summary      Approve quote
// @Description  Creates the sale and its receivable (and the contract for contract quotes) atomically.
// @Tags         quotes
// @Produce      json
// @Param        kind  path      string  true  "equipamentos or contratos"
// @Param        id    path      string  true  "Quote ID"
// @Success      200   {object}  response.ApprovalResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{kind}/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	res, err := h.usecase.Approve(c.Request.Context(), middleware.Session(c), kind, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(res))
}

// RejectQuote godoc
// @Summary      Reject quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        kind    path      string                      true  "equipamentos or contratos"
// @Param        id      path      string                      true  "Quote ID"
// @Param        reject  body      request.RejectQuoteRequest  true  "Reason"
// @Success      200     {object}  entities.Quote
// @Security     Bearer
// @Router       /quotes/{kind}/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	var payload request.RejectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	quote, err := h.usecase.Reject(c.Request.Context(), middleware.Session(c), kind, c.Param("id"), payload.Reason, payload.ReturnTicket)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, quote)
}

// PrintQuote returns the filled HTML template, ready for the browser print dialog.
// @Summary      Printable quote
// @Tags         quotes
// @Produce      html
// @Param        kind  path  string  true  "equipamentos or contratos"
// @Param        id    path  string  true  "Quote ID"
// @Success      200
// @Security     Bearer
// @Router       /quotes/{kind}/{id}/print [get]
func (h *QuoteHandler) PrintQuote(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	html, err := h.usecase.RenderHTML(c.Request.Context(), middleware.Session(c), kind, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// QuotePDF godoc
// @Summary      Quote as PDF
// @Tags         quotes
// @Produce      application/pdf
// @Param        kind  path  string  true  "equipamentos or contratos"
// @Param        id    path  string  true  "Quote ID"
// @Success      200
// @Security     Bearer
// @Router       /quotes/{kind}/{id}/pdf [get]
func (h *QuoteHandler) QuotePDF(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	pdf, quote, err := h.usecase.RenderPDF(c.Request.Context(), middleware.Session(c), kind, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="Orcamento_%s.pdf"`, quote.Number))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// EmailQuote godoc
// @Summary      Send quote by email
// @Description  Renders the PDF, hands it to the mail relay and marks a draft quote as enviado.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        kind   path      string                     true  "equipamentos or contratos"
// @Param        id     path      string                     true  "Quote ID"
// @Param        email  body      request.QuoteEmailRequest  false "Recipient override"
// @Success      200    {object}  response.QuoteEmailResponse
// @Failure      502    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{kind}/{id}/email [post]
func (h *QuoteHandler) EmailQuote(c *gin.Context) {
	kind, ok := quoteKind(c)
	if !ok {
		return
	}
	var payload request.QuoteEmailRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeBindError(c, err)
			return
		}
	}

	res, err := h.usecase.SendByEmail(c.Request.Context(), middleware.Session(c), kind, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmailResult(res))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteKind),
		errors.Is(err, usecase.ErrInvalidQuoteItem), errors.Is(err, usecase.ErrInvalidPaymentTerms),
		errors.Is(err, usecase.ErrInvalidBillingDay), errors.Is(err, usecase.ErrInvalidRejectReason),
		errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidRecipient),
		errors.Is(err, usecase.ErrInvalidMonthlyValue):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteWithoutItems):
		return pkg.NewDomainErrorSimple("QUOTE_WITHOUT_ITEMS", "Quote has no items", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteAlreadyApproved):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_APPROVED", "Quote already approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteChanged):
		return pkg.NewDomainErrorSimple("QUOTE_CHANGED", "Quote was changed by another request, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotEditable), errors.Is(err, usecase.ErrInvalidQuoteTransition):
		return pkg.NewDomainError("INVALID_QUOTE_STATUS", "Operation not allowed in the current quote status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrMailNotConfigured), errors.Is(err, usecase.ErrRendererMissing):
		return pkg.NewDomainError("NOT_CONFIGURED", "Feature not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrMailRelayFailed):
		return pkg.NewDomainError("MAIL_RELAY_ERROR", "Mail relay failed", err, http.StatusBadGateway)
	default:
		return mapCommonError(err)
	}
}
