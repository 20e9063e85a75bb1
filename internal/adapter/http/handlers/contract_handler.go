package handlers

import (
	"errors"
	request "gestao_comercial/internal/adapter/http/dto/request"
	"gestao_comercial/internal/adapter/http/middleware"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract godoc
// @Summary      Create contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        contract  body      request.ContractRequest  true  "Contract"
// @Success      201       {object}  entities.Contract
// @Failure      400       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}

	contract, err := h.usecase.Create(c.Request.Context(), middleware.Session(c), in)
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusCreated, contract)
}

// ListContracts accepts ?clienteId= to restrict the list to one client.
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Param        clienteId  query  string  false  "Client ID"
// @Success      200  {array}  entities.Contract
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	var (
		contracts []entities.Contract
		err       error
	)
	ctx, s := c.Request.Context(), middleware.Session(c)
	if clientID := c.Query("clienteId"); clientID != "" {
		contracts, err = h.usecase.ListByClient(ctx, s, clientID)
	} else {
		contracts, err = h.usecase.List(ctx, s)
	}
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, contracts)
}

// GetContract godoc
// @Summary      Get contract
// @Tags         contracts
// @Produce      json
// @Param        id  path  string  true  "Contract ID"
// @Success      200  {object}  entities.Contract
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, contract)
}

// UpdateContract godoc
// @Summary      Edit administrative contract fields
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id        path      string                        true  "Contract ID"
// @Param        contract  body      request.ContractAdminRequest  true  "Fields"
// @Success      200       {object}  entities.Contract
// @Security     Bearer
// @Router       /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var payload request.ContractAdminRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	contract, err := h.usecase.UpdateAdministrative(c.Request.Context(), middleware.Session(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, contract)
}

// ChangeContractStatus godoc
// @Summary      Change contract status
// @Description  Re-derives the client contract status and cost center activity.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id      path      string                         true  "Contract ID"
// @Param        status  body      request.ContractStatusRequest  true  "Status"
// @Success      200     {object}  entities.Contract
// @Failure      409     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contracts/{id}/status [patch]
func (h *ContractHandler) ChangeContractStatus(c *gin.Context) {
	var payload request.ContractStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	contract, err := h.usecase.ChangeStatus(c.Request.Context(), middleware.Session(c), c.Param("id"), payload.ToStatus())
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, contract)
}

// ChangeContractSituation godoc
// @Summary      Change contract situacao
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id        path      string                            true  "Contract ID"
// @Param        situacao  body      request.ContractSituationRequest  true  "Situacao"
// @Success      200       {object}  entities.Contract
// @Failure      409       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contracts/{id}/situacao [patch]
func (h *ContractHandler) ChangeContractSituation(c *gin.Context) {
	var payload request.ContractSituationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	contract, err := h.usecase.ChangeSituacao(c.Request.Context(), middleware.Session(c), c.Param("id"), payload.ToSituation())
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, contract)
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidContractStatus),
		errors.Is(err, usecase.ErrInvalidContractSituation), errors.Is(err, usecase.ErrInvalidMonthlyValue),
		errors.Is(err, usecase.ErrInvalidBillingDay), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidContractTransition), errors.Is(err, usecase.ErrContractNotApproved):
		return pkg.NewDomainError("INVALID_CONTRACT_STATUS", "Operation not allowed in the current contract status", err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
