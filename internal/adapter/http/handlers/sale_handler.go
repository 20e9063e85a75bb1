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

// SaleHandler is read only: sales are created by quote approval and moved
// by invoice generation.
type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// ListSales godoc
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Param        status  query  string  false  "Sale status"
// @Success      200  {array}  entities.Sale
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	var query request.SaleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, err)
		return
	}
	sales, err := h.usecase.List(c.Request.Context(), middleware.Session(c), query.ToStatus())
	if err != nil {
		writeError(c, mapSaleError(err))
		return
	}
	c.JSON(http.StatusOK, sales)
}

// GetSale godoc
// @Summary      Get sale
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "Sale ID"
// @Success      200  {object}  entities.Sale
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapSaleError(err))
		return
	}
	c.JSON(http.StatusOK, sale)
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidSaleStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
