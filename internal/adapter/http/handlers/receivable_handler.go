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

type ReceivableHandler struct {
	usecase usecase.IReceivableUseCase
}

func NewReceivableHandler(uc usecase.IReceivableUseCase) *ReceivableHandler {
	return &ReceivableHandler{usecase: uc}
}

// ListReceivables accepts the optional ?mes= and ?status= filters.
// @Summary      List receivables
// @Tags         receivables
// @Produce      json
// @Param        mes     query  string  false  "Reference month (YYYY-MM)"
// @Param        status  query  string  false  "Receivable status"
// @Success      200  {array}  entities.Receivable
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /receivables [get]
func (h *ReceivableHandler) ListReceivables(c *gin.Context) {
	var query request.ReceivableQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, err)
		return
	}
	list, err := h.usecase.List(c.Request.Context(), middleware.Session(c), query.ToFilter())
	if err != nil {
		writeError(c, mapReceivableError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

// SettleReceivable godoc
// @Summary      Settle receivable
// @Tags         receivables
// @Produce      json
// @Param        id  path  string  true  "Receivable ID"
// @Success      200  {object}  entities.Receivable
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /receivables/{id}/settle [patch]
func (h *ReceivableHandler) SettleReceivable(c *gin.Context) {
	r, err := h.usecase.Settle(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		writeError(c, mapReceivableError(err))
		return
	}
	c.JSON(http.StatusOK, r)
}

func mapReceivableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReceivableID), errors.Is(err, usecase.ErrInvalidReceivableStatus),
		errors.Is(err, usecase.ErrInvalidMonth):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReceivableNotFound):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_FOUND", "Receivable not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceivableNotPending):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_PENDING", "Receivable is not pending", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
