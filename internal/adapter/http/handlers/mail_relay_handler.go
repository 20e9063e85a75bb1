package handlers

import (
	"errors"
	request "gestao_comercial/internal/adapter/http/dto/request"
	response "gestao_comercial/internal/adapter/http/dto/response"
	"gestao_comercial/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MailRelayHandler is the whole HTTP surface of the mail relay binary. It
// keeps the relay's own response shape instead of pkg.HTTPError.
type MailRelayHandler struct {
	usecase usecase.IMailRelayUseCase
}

func NewMailRelayHandler(uc usecase.IMailRelayUseCase) *MailRelayHandler {
	return &MailRelayHandler{usecase: uc}
}

func (h *MailRelayHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Servidor de email rodando")
}

func (h *MailRelayHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.RelayRejectedResponse{Message: "JSON inválido"})
		return
	}

	id, err := h.usecase.SendQuote(c.Request.Context(), payload.ToMessage())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.RelaySuccessResponse{Success: true, MessageID: id})
	case errors.Is(err, usecase.ErrMailDelivery):
		c.JSON(http.StatusInternalServerError, response.RelayFailureResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadRequest, response.RelayRejectedResponse{Message: err.Error()})
	}
}
