package middleware

import (
	"gestao_comercial/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SetSession stores the acting operator on the request context.
func SetSession(c *gin.Context, s entities.Session) {
	c.Set(sessionKey, s)
}

// Session returns the operator stored by Auth. A request that did not pass
// through Auth yields an empty session, which every use case rejects.
func Session(c *gin.Context) entities.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}
	}
	s, _ := v.(entities.Session)
	return s
}
