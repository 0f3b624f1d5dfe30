package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func TestMintTokenRoundtrip(t *testing.T) {
	cfg := testConfig()
	key := &models.APIKey{KeyID: "tc_abc123", Role: models.RoleAdmin}

	signed, expiresAt, err := MintToken(key, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	assert.WithinDuration(t, time.Now().Add(TokenTTL), expiresAt, 5*time.Second)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "tc_abc123", claims.KeyID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "tc_abc123", claims.Subject)
}

func TestMintTokenRejectsWrongSecret(t *testing.T) {
	key := &models.APIKey{KeyID: "tc_abc123", Role: models.RoleUser}

	signed, _, err := MintToken(key, testConfig())
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(signed, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func jwtAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuth(nil, testConfig()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := jwtAuthRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization required")
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router := jwtAuthRouter()

	for _, header := range []string{"Bearer", "Basic dXNlcjpwYXNz", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router := jwtAuthRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func adminRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin",
		func(c *gin.Context) {
			if role != "" {
				c.Set("user_role", role)
			}
		},
		AdminRequired(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return router
}

func TestAdminRequired(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"no role", "", http.StatusUnauthorized},
		{"user role", models.RoleUser, http.StatusForbidden},
		{"admin role", models.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			w := httptest.NewRecorder()
			adminRouter(tt.role).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
