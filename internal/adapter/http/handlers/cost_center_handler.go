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

type CostCenterHandler struct {
	usecase usecase.ICostCenterUseCase
}

func NewCostCenterHandler(uc usecase.ICostCenterUseCase) *CostCenterHandler {
	return &CostCenterHandler{usecase: uc}
}

// ListCostCenters godoc
// @Summary      List cost centers
// @Tags         cost-centers
// @Produce      json
// @Success      200  {array}  entities.CostCenter
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /cost-centers [get]
func (h *CostCenterHandler) ListCostCenters(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), middleware.Session(c))
	if err != nil {
		writeError(c, mapCostCenterError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

// SetCostCenterActive godoc
// @Summary      Activate or deactivate a cost center
// @Tags         cost-centers
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Cost center ID"
// @Param        payload  body  request.ActiveRequest  true  "Active flag"
// @Success      200  {object}  entities.CostCenter
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /cost-centers/{id}/active [patch]
func (h *CostCenterHandler) SetCostCenterActive(c *gin.Context) {
	var payload request.ActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	cc, err := h.usecase.SetActive(c.Request.Context(), middleware.Session(c), c.Param("id"), *payload.Active)
	if err != nil {
		writeError(c, mapCostCenterError(err))
		return
	}
	c.JSON(http.StatusOK, cc)
}

func mapCostCenterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCostCenterID), errors.Is(err, usecase.ErrInvalidCostCenterName):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCostCenterNotFound):
		return pkg.NewDomainErrorSimple("COST_CENTER_NOT_FOUND", "Cost center not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
