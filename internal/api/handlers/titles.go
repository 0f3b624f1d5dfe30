package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/metrics"
	"github.com/tonecraft-ai/tonecraft-api/internal/services"
)

type TitleHandler struct {
	titleService  *services.TitleService
	cfg           *config.Config
	cw            *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewTitleHandler(db *gorm.DB, cfg *config.Config, cw *metrics.Client) *TitleHandler {
	return &TitleHandler{
		titleService:  services.NewTitleService(cfg, db),
		cfg:           cfg,
		cw:            cw,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

type GenerateTitleRequest struct {
	Description string  `json:"description" binding:"required"`
	Seed        *uint64 `json:"seed"`
	WithLyrics  bool    `json:"with_lyrics"`
	Model       string  `json:"model"`
}

// Generate names a track, with lyrics on request
func (h *TitleHandler) Generate(c *gin.Context) {
	var req GenerateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Model != "" && !allowedModels[req.Model] {
		c.JSON(http.StatusBadRequest, gin.H{"error": allowedModelsHint})
		return
	}

	result, err := h.titleService.Generate(c.Request.Context(), &services.TitleRequest{
		Description: req.Description,
		Seed:        req.Seed,
		WithLyrics:  req.WithLyrics,
		Model:       req.Model,
		UserID:      c.GetString("user_id"),
		RequestID:   c.GetString("request_id"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Lyrics were asked for but the word-pool answered
	if result.Fallback && req.WithLyrics {
		h.sentryMetrics.RecordFallback("title", "title generation failed")
		if h.cw != nil {
			h.cw.RecordLLMFallback("title")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    result.Title,
		"lyrics":   result.Lyrics,
		"fallback": result.Fallback,
		"model":    result.Model,
		"seed":     result.Seed,
	})
}
