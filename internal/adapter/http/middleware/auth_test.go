package middleware

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func newAuthRouter(got *entities.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(testSecret))
	r.GET("/v1/clients", func(c *gin.Context) {
		*got = Session(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		var got entities.Session
		r := newAuthRouter(&got)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clients", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, got.Valid())
	})

	t.Run("wrong secret", func(t *testing.T) {
		var got entities.Session
		r := newAuthRouter(&got)
		token, err := jwt.Generate("outro-segredo", "test", "user-1", "Ana", "emp-1", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token builds the session", func(t *testing.T) {
		var got entities.Session
		r := newAuthRouter(&got)
		token, err := jwt.Generate(testSecret, "test", "user-1", "Ana Souza", "emp-1", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, entities.Session{CompanyID: "emp-1", UserID: "user-1", UserName: "Ana Souza"}, got)
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
