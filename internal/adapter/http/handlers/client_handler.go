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

// ClientHandler exposes clients with their contacts and equipments.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      request.ClientRequest  true  "Client"
// @Success      201     {object}  entities.Client
// @Failure      400     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), middleware.Session(c), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient godoc
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Client ID"
// @Param        client  body      request.ClientRequest  true  "Client"
// @Success      200     {object}  entities.Client
// @Failure      404     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), middleware.Session(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetClient godoc
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id  path      string  true  "Client ID"
// @Success      200 {object}  entities.Client
// @Failure      404 {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200 {array}  entities.Client
// @Security     Bearer
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context(), middleware.Session(c))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary      Delete client
// @Tags         clients
// @Param        id  path  string  true  "Client ID"
// @Success      204
// @Failure      404 {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddContact godoc
// @Summary      Add contact to client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Client ID"
// @Param        contact  body      request.ContactRequest  true  "Contact"
// @Success      201      {object}  entities.Contact
// @Security     Bearer
// @Router       /clients/{id}/contacts [post]
func (h *ClientHandler) AddContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	contact, err := h.usecase.AddContact(c.Request.Context(), middleware.Session(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// ListContacts godoc
// @Summary      List client contacts
// @Tags         clients
// @Produce      json
// @Param        id  path      string  true  "Client ID"
// @Success      200 {array}   entities.Contact
// @Security     Bearer
// @Router       /clients/{id}/contacts [get]
func (h *ClientHandler) ListContacts(c *gin.Context) {
	contacts, err := h.usecase.ListContacts(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// SetPrimaryContact godoc
// @Summary      Make a contact the primary one
// @Tags         clients
// @Produce      json
// @Param        id         path      string  true  "Client ID"
// @Param        contactId  path      string  true  "Contact ID"
// @Success      200        {object}  entities.Client
// @Security     Bearer
// @Router       /clients/{id}/contacts/{contactId}/primary [patch]
func (h *ClientHandler) SetPrimaryContact(c *gin.Context) {
	client, err := h.usecase.SetPrimaryContact(c.Request.Context(), middleware.Session(c), c.Param("id"), c.Param("contactId"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

// AddEquipment godoc
// @Summary      Add equipment to client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id         path      string                    true  "Client ID"
// @Param        equipment  body      request.EquipmentRequest  true  "Equipment"
// @Success      201        {object}  entities.Equipment
// @Security     Bearer
// @Router       /clients/{id}/equipments [post]
func (h *ClientHandler) AddEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	eq, err := h.usecase.AddEquipment(c.Request.Context(), middleware.Session(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, eq)
}

// ListEquipments godoc
// @Summary      List client equipments
// @Tags         clients
// @Produce      json
// @Param        id  path      string  true  "Client ID"
// @Success      200 {array}   entities.Equipment
// @Security     Bearer
// @Router       /clients/{id}/equipments [get]
func (h *ClientHandler) ListEquipments(c *gin.Context) {
	list, err := h.usecase.ListEquipments(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidContactName), errors.Is(err, usecase.ErrInvalidEquipment):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
