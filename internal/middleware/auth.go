package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/models"
)

const (
	bearerPrefix = "Bearer"

	// TokenTTL bounds how long a minted bearer token stays valid
	TokenTTL = 24 * time.Hour
)

type Claims struct {
	KeyID string `json:"key_id"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// MintToken issues a signed bearer token for a validated API key
func MintToken(key *models.APIKey, cfg *config.Config) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(TokenTTL)

	claims := &Claims{
		KeyID: key.KeyID,
		Role:  key.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   key.KeyID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// JWTAuth middleware validates bearer tokens and attaches the API key to context
func JWTAuth(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// Extract token from "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == bearerPrefix {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			c.Abort()
			return
		}

		// Parse and validate token
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			// Verify signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Load API key from database
		var key models.APIKey
		if err := db.Where("key_id = ?", claims.KeyID).First(&key).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API key not found"})
			c.Abort()
			return
		}

		if !key.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "API key is disabled"})
			c.Abort()
			return
		}

		// Attach key identity to context
		c.Set("api_key", key)
		c.Set("user_id", key.KeyID)
		c.Set("user_role", key.Role)

		c.Next()
	}
}

// GetCurrentKey retrieves the API key from context
func GetCurrentKey(c *gin.Context) (*models.APIKey, bool) {
	keyVal, exists := c.Get("api_key")
	if !exists {
		return nil, false
	}
	key, ok := keyVal.(models.APIKey)
	return &key, ok
}
