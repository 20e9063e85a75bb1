package handlers

import (
	"errors"
	request "gestao_comercial/internal/adapter/http/dto/request"
	"gestao_comercial/internal/adapter/http/middleware"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

// CreateTicket godoc
// @Summary      Open ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        ticket  body  request.TicketRequest  true  "Ticket"
// @Success      201  {object}  entities.Ticket
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.TicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	ticket, err := h.usecase.Create(c.Request.Context(), middleware.Session(c), payload.ToInput())
	if err != nil {
		writeError(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GetTicket godoc
// @Summary      Get ticket
// @Tags         tickets
// @Produce      json
// @Param        id  path  string  true  "Ticket ID"
// @Success      200  {object}  entities.Ticket
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.usecase.GetByID(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// ListTickets godoc
// @Summary      List tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {array}  entities.Ticket
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.usecase.List(c.Request.Context(), middleware.Session(c))
	if err != nil {
		writeError(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// ChangeTicketStatus godoc
// @Summary      Change ticket status
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Ticket ID"
// @Param        payload  body  request.TicketStatusRequest  true  "New status"
// @Success      200  {object}  entities.Ticket
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /tickets/{id}/status [patch]
func (h *TicketHandler) ChangeTicketStatus(c *gin.Context) {
	var payload request.TicketStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	ticket, err := h.usecase.ChangeStatus(c.Request.Context(), middleware.Session(c), c.Param("id"), payload.ToStatus(), payload.Note)
	if err != nil {
		writeError(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func mapTicketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, usecase.ErrInvalidTicketDescription),
		errors.Is(err, usecase.ErrInvalidTicketStatus), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTicketTransition):
		return pkg.NewDomainError("INVALID_TICKET_STATUS", "Ticket status transition not allowed", err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
