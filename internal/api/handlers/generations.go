package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/services"
)

type GenerationsHandler struct {
	styleService *services.StyleService
}

func NewGenerationsHandler(db *gorm.DB) *GenerationsHandler {
	return &GenerationsHandler{styleService: services.NewStyleService(db)}
}

// List returns recent generation history rows, newest first
func (h *GenerationsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	userID := c.Query("user_id")

	rows, err := h.styleService.ListGenerations(userID, limit)
	if err != nil {
		if errors.Is(err, services.ErrHistoryDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Generation history is disabled"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load generations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"generations": rows,
		"count":       len(rows),
	})
}

// Get returns one generation by its public UUID
func (h *GenerationsHandler) Get(c *gin.Context) {
	row, err := h.styleService.GetGeneration(c.Param("uuid"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHistoryDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Generation history is disabled"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Generation not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load generation"})
		}
		return
	}

	c.JSON(http.StatusOK, row)
}
