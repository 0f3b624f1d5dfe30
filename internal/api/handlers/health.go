package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
)

// HealthCheck returns liveness plus the state of the optional subsystems
func HealthCheck(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "disabled"
		if db != nil {
			dbStatus = "connected"
			if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
				dbStatus = "unreachable"
			}
		}

		llmStatus := "disabled"
		if cfg.LLMEnhanceEnabled {
			llmStatus = "enabled"
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"database": gin.H{
				"status": dbStatus,
			},
			"llm_enhance": gin.H{
				"status": llmStatus,
				"model":  cfg.DefaultModel,
			},
		})
	}
}
