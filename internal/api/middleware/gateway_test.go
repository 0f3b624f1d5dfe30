package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tonecraft-ai/tonecraft-api/internal/models"
)

func identityRouter(auth gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", auth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetString("user_id"),
			"user_role": c.GetString("user_role"),
		})
	})
	return router
}

func TestGatewayAuthRequiresUserID(t *testing.T) {
	router := identityRouter(GatewayAuth())

	req := httptest.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "X-User-ID")
}

func TestGatewayAuthPassesIdentity(t *testing.T) {
	router := identityRouter(GatewayAuth())

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-User-Role", models.RoleAdmin)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
	assert.Contains(t, w.Body.String(), `"user_role":"admin"`)
}

func TestGatewayAuthNormalizesUnknownRole(t *testing.T) {
	router := identityRouter(GatewayAuth())

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-User-Role", "superuser")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_role":"user"`)
}

func TestNoAuthSetsOperatorIdentity(t *testing.T) {
	router := identityRouter(NoAuth())

	req := httptest.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"anonymous"`)
	assert.Contains(t, w.Body.String(), `"user_role":"admin"`)
}
