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

// CatalogHandler serves banks and products.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateBank godoc
// @Summary      Create bank
// @Tags         banks
// @Accept       json
// @Produce      json
// @Param        bank  body  request.BankRequest  true  "Bank"
// @Success      201  {object}  entities.Bank
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /banks [post]
func (h *CatalogHandler) CreateBank(c *gin.Context) {
	var payload request.BankRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	bank, err := h.usecase.CreateBank(c.Request.Context(), middleware.Session(c), payload.ToInput())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, bank)
}

// GetBank godoc
// @Summary      Get bank
// @Tags         banks
// @Produce      json
// @Param        id  path  string  true  "Bank ID"
// @Success      200  {object}  entities.Bank
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /banks/{id} [get]
func (h *CatalogHandler) GetBank(c *gin.Context) {
	bank, err := h.usecase.GetBank(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, bank)
}

// ListBanks godoc
// @Summary      List banks
// @Tags         banks
// @Produce      json
// @Success      200  {array}  entities.Bank
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /banks [get]
func (h *CatalogHandler) ListBanks(c *gin.Context) {
	banks, err := h.usecase.ListBanks(c.Request.Context(), middleware.Session(c))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, banks)
}

// CreateProduct godoc
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body  request.ProductRequest  true  "Product"
// @Success      201  {object}  entities.Product
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	product, err := h.usecase.CreateProduct(c.Request.Context(), middleware.Session(c), payload.ToInput())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProduct godoc
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  entities.Product
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetProduct(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListProducts godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  entities.Product
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context(), middleware.Session(c))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, products)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBankID), errors.Is(err, usecase.ErrInvalidBankName),
		errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductPrice):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBankNotFound):
		return pkg.NewDomainErrorSimple("BANK_NOT_FOUND", "Bank not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
