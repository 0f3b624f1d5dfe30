package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/models"
	"github.com/tonecraft-ai/tonecraft-api/internal/services"
)

const activeStatusTrue = "true"

type AdminHandler struct {
	db    *gorm.DB
	usage *services.UsageService
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{
		db:    db,
		usage: services.NewUsageService(db),
	}
}

type CreateKeyRequest struct {
	Label string `json:"label" binding:"required"`
	Role  string `json:"role" binding:"omitempty,oneof=admin user"`
}

// CreateKey mints a new API key. The secret appears in this response only.
func (h *AdminHandler) CreateKey(c *gin.Context) {
	var req CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Key management requires a database"})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	key, secret, err := newAPIKey(req.Label, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create key"})
		return
	}

	if err := h.db.Create(key).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create key"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"key_id": key.KeyID,
		"secret": secret,
		"label":  key.Label,
		"role":   key.Role,
	})
}

// ListKeys returns all API keys, optionally filtered by active state
func (h *AdminHandler) ListKeys(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Key management requires a database"})
		return
	}

	query := h.db.Model(&models.APIKey{})
	if isActive := c.Query("is_active"); isActive != "" {
		query = query.Where("is_active = ?", isActive == activeStatusTrue)
	}

	var keys []models.APIKey
	if err := query.Order("created_at DESC").Find(&keys).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch keys"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"keys": keys, "count": len(keys)})
}

// RevokeKey deactivates an API key by its public key ID
func (h *AdminHandler) RevokeKey(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Key management requires a database"})
		return
	}

	var key models.APIKey
	if err := h.db.Where("key_id = ?", c.Param("key_id")).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch key"})
		return
	}

	key.IsActive = false
	if err := h.db.Save(&key).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke key"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Key revoked", "key_id": key.KeyID})
}

// GetUsage aggregates LLM usage over an optional from/to window (RFC3339)
func (h *AdminHandler) GetUsage(c *gin.Context) {
	var from, to time.Time

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from timestamp, use RFC3339"})
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to timestamp, use RFC3339"})
			return
		}
		to = parsed
	}

	stats, err := h.usage.GetUsageStats(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate usage"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
