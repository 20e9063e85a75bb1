package middleware

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/pkg"
	"gestao_comercial/pkg/jwt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// Auth validates the bearer token and builds the request session from its
// claims. The company in the token scopes every document the request touches.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := jwt.Parse(secret, token)
		if err != nil {
			log.Debug().Err(err).Str("component", "auth").Msg("token rejected")
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		SetSession(c, entities.Session{
			CompanyID: claims.CompanyID,
			UserID:    claims.UserID,
			UserName:  claims.UserName,
		})
		c.Next()
	}
}
