package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/middleware"
	"github.com/tonecraft-ai/tonecraft-api/internal/models"
)

const keyIDPrefix = "tc_"

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type TokenRequest struct {
	KeyID  string `json:"key_id" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}

// Token exchanges API key credentials for a bearer token
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Token auth requires a database"})
		return
	}

	var key models.APIKey
	if err := h.db.Where("key_id = ?", req.KeyID).First(&key).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !key.IsActive || !key.CheckSecret(req.Secret) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, expiresAt, err := middleware.MintToken(&key, h.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mint token"})
		return
	}

	now := time.Now()
	if err := h.db.Model(&key).Update("last_used_at", now).Error; err != nil {
		log.Printf("⚠️  Failed to update key last_used_at: %v", err)
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	})
}

type BootstrapRequest struct {
	Label string `json:"label"`
}

// Bootstrap creates the first admin API key. It only works while the key
// table is empty, so it is safe to leave routed.
func (h *AuthHandler) Bootstrap(c *gin.Context) {
	var req BootstrapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Bootstrap requires a database"})
		return
	}

	var count int64
	if err := h.db.Model(&models.APIKey{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing keys"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Already bootstrapped"})
		return
	}

	label := req.Label
	if label == "" {
		label = "bootstrap admin"
	}

	key, secret, err := newAPIKey(label, models.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create key"})
		return
	}

	if err := h.db.Create(key).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create key"})
		return
	}

	log.Printf("🔑 Bootstrap admin key created: %s", key.KeyID)

	// The secret is shown exactly once
	c.JSON(http.StatusCreated, gin.H{
		"key_id": key.KeyID,
		"secret": secret,
		"label":  key.Label,
		"role":   key.Role,
	})
}

// newAPIKey mints a key/secret pair; only the secret hash is stored.
func newAPIKey(label, role string) (*models.APIKey, string, error) {
	key := &models.APIKey{
		KeyID:    keyIDPrefix + strings.ReplaceAll(uuid.New().String(), "-", ""),
		Label:    label,
		Role:     role,
		IsActive: true,
	}

	secret := uuid.New().String()
	if err := key.HashSecret(secret); err != nil {
		return nil, "", err
	}

	return key, secret, nil
}
