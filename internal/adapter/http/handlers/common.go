package handlers

import (
	"errors"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/internal/usecase/interfaces"
	"gestao_comercial/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(appErr.Err).Str("code", appErr.Code).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeBindError(c *gin.Context, err error) {
	writeError(c, pkg.FromValidationError(err))
}

// mapCommonError covers failures every use case can return.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSession):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Session without company", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrLockNotObtained):
		return pkg.NewDomainErrorSimple("RESOURCE_BUSY", "Another operation is numbering this document, try again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
