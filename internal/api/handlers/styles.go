package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/compose"
	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/metrics"
	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
	"github.com/tonecraft-ai/tonecraft-api/internal/services"
)

// Models accepted for the enhance and title collaborators
var allowedModels = map[string]bool{
	// OpenAI GPT-5 models
	"gpt-5":      true,
	"gpt-5-mini": true,
	"gpt-5-nano": true,
	// Google Gemini 2.5 models
	"gemini-2.5-flash": true,
	"gemini-2.5-pro":   true,
}

const allowedModelsHint = "Invalid model. Allowed: gpt-5, gpt-5-mini, gpt-5-nano, gemini-2.5-flash, gemini-2.5-pro"

type StyleHandler struct {
	styleService   *services.StyleService
	enhanceService *services.EnhanceService
	cfg            *config.Config
	cw             *metrics.Client
	sentryMetrics  *metrics.SentryMetrics
}

func NewStyleHandler(db *gorm.DB, cfg *config.Config, cw *metrics.Client) *StyleHandler {
	return &StyleHandler{
		styleService:   services.NewStyleService(db),
		enhanceService: services.NewEnhanceService(cfg, db),
		cfg:            cfg,
		cw:             cw,
		sentryMetrics:  metrics.NewSentryMetrics(),
	}
}

// ContrastEntry forces a section's mood and/or dynamics
type ContrastEntry struct {
	Section  string `json:"section" binding:"required"`
	Mood     string `json:"mood"`
	Dynamics string `json:"dynamics"`
}

type GenerateStyleRequest struct {
	Description     string          `json:"description"`
	Seed            *uint64         `json:"seed"`
	Mode            string          `json:"mode"` // "standard" (default) or "max"
	Genres          []string        `json:"genres"`
	Instruments     []string        `json:"instruments"`
	DescriptorCount int             `json:"descriptor_count"`
	Scene           string          `json:"scene"`
	Contrast        []ContrastEntry `json:"contrast"`
	NarrativeArc    []string        `json:"narrative_arc"`
	GenreCount      int             `json:"genre_count"`
	WithTitle       bool            `json:"with_title"`
}

type BPMInfo struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Typical int `json:"typical"`
}

type StyleResponse struct {
	UUID        string   `json:"uuid"`
	Prompt      string   `json:"prompt"`
	Genre       string   `json:"genre"`
	GenreNames  []string `json:"genre_names"`
	BPM         BPMInfo  `json:"bpm"`
	Mood        string   `json:"mood"`
	Instruments []string `json:"instruments"`
	StyleTags   []string `json:"style_tags"`
	Recording   []string `json:"recording"`
	Title       string   `json:"title,omitempty"`
	Seed        uint64   `json:"seed"`
	Mode        string   `json:"mode"`
}

// Generate runs the deterministic style pipeline
func (h *StyleHandler) Generate(c *gin.Context) {
	var req GenerateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = services.ModeStandard
	}
	if mode != services.ModeStandard && mode != services.ModeMax {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mode. Allowed: standard, max"})
		return
	}

	contrast, err := parseContrast(req.Contrast)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	result, err := h.styleService.Generate(&services.StyleRequest{
		Description:      req.Description,
		Seed:             req.Seed,
		MaxMode:          mode == services.ModeMax,
		Genres:           req.Genres,
		Instruments:      req.Instruments,
		DescriptorCount:  req.DescriptorCount,
		Scene:            req.Scene,
		Contrast:         contrast,
		NarrativeArc:     req.NarrativeArc,
		TargetGenreCount: req.GenreCount,
		WithTitle:        req.WithTitle,
		UserID:           c.GetString("user_id"),
		RequestID:        c.GetString("request_id"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation failed"})
		return
	}
	duration := time.Since(start)

	h.sentryMetrics.RecordGenerationDuration(c.Request.Context(), mode, duration)
	if h.cw != nil {
		h.cw.RecordStyleGeneration(mode, duration)
	}

	c.JSON(http.StatusOK, toStyleResponse(result))
}

type ConvertMaxRequest struct {
	Text  string `json:"text" binding:"required"`
	Model string `json:"model"`
}

// ConvertToMax rewrites arbitrary prompt text into MAX format
func (h *StyleHandler) ConvertToMax(c *gin.Context) {
	var req ConvertMaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Model != "" && !allowedModels[req.Model] {
		c.JSON(http.StatusBadRequest, gin.H{"error": allowedModelsHint})
		return
	}

	result, err := h.enhanceService.ConvertToMax(c.Request.Context(), &services.ConvertRequest{
		Text:      req.Text,
		Model:     req.Model,
		UserID:    c.GetString("user_id"),
		RequestID: c.GetString("request_id"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A fallback after a real LLM attempt is worth counting
	if result.Fallback && result.Model != "" {
		h.sentryMetrics.RecordFallback("enhance", "enrichment failed")
		if h.cw != nil {
			h.cw.RecordLLMFallback("enhance")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"prompt":      result.Prompt,
		"already_max": result.AlreadyMax,
		"fallback":    result.Fallback,
		"model":       result.Model,
	})
}

type EnforceGenresRequest struct {
	Prompt string  `json:"prompt" binding:"required"`
	Count  int     `json:"count" binding:"required"`
	Seed   *uint64 `json:"seed"`
}

// EnforceGenres rewrites a prompt's genre field to exactly count genres
func (h *StyleHandler) EnforceGenres(c *gin.Context) {
	var req EnforceGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}

	c.JSON(http.StatusOK, gin.H{
		"prompt": prompt.EnforceGenreCount(req.Prompt, req.Count, rng.New(seed)),
		"seed":   seed,
	})
}

type GenreSummary struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	BPM         BPMInfo  `json:"bpm"`
	Moods       []string `json:"moods"`
	MaxTags     int      `json:"max_tags"`
}

// ListGenres returns the registry's genre catalog
func (h *StyleHandler) ListGenres(c *gin.Context) {
	keys := registry.GenreKeys()
	genres := make([]GenreSummary, 0, len(keys))
	for _, key := range keys {
		g, ok := registry.GetGenre(key)
		if !ok {
			continue
		}
		genres = append(genres, GenreSummary{
			Key:         g.Key,
			Name:        g.Name,
			Description: g.Description,
			BPM:         BPMInfo{Min: g.BPM.Min, Max: g.BPM.Max, Typical: g.BPM.Typical},
			Moods:       g.Moods,
			MaxTags:     g.MaxTags,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"genres": genres,
		"count":  len(genres),
	})
}

// parseContrast validates section names and maps entries onto composer
// overrides
func parseContrast(entries []ContrastEntry) ([]compose.SectionOverride, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	valid := make(map[registry.SectionType]bool)
	for _, t := range registry.SectionSequence() {
		valid[t] = true
	}

	overrides := make([]compose.SectionOverride, 0, len(entries))
	for _, e := range entries {
		section := registry.SectionType(strings.ToUpper(strings.TrimSpace(e.Section)))
		if !valid[section] {
			return nil, fmt.Errorf("invalid section %q. Allowed: INTRO, VERSE, CHORUS, BRIDGE, OUTRO", e.Section)
		}
		overrides = append(overrides, compose.SectionOverride{
			Section:  section,
			Mood:     e.Mood,
			Dynamics: e.Dynamics,
		})
	}
	return overrides, nil
}

func toStyleResponse(r *services.StyleResult) StyleResponse {
	mode := services.ModeStandard
	if r.MaxMode {
		mode = services.ModeMax
	}
	return StyleResponse{
		UUID:        r.UUID,
		Prompt:      r.Prompt,
		Genre:       r.Genre,
		GenreNames:  r.GenreNames,
		BPM:         BPMInfo{Min: r.BPM.Min, Max: r.BPM.Max, Typical: r.BPM.Typical},
		Mood:        r.Mood,
		Instruments: r.Instruments,
		StyleTags:   r.StyleTags,
		Recording:   r.Recording,
		Title:       r.Title,
		Seed:        r.Seed,
		Mode:        mode,
	}
}
