package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
)

const bytesPerMB = 1 << 20

type MetricsHandler struct {
	startTime time.Time
	version   string
	cfg       *config.Config
}

func NewMetricsHandler(version string, cfg *config.Config) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		cfg:       cfg,
	}
}

type MetricsResponse struct {
	Status    string        `json:"status"`
	Uptime    string        `json:"uptime"`
	Timestamp string        `json:"timestamp"`
	Version   string        `json:"version"`
	StartTime string        `json:"start_time"`
	System    SystemMetrics `json:"system"`
	Engine    EngineMetrics `json:"engine"`
}

type SystemMetrics struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
	MemTotalMB   uint64 `json:"mem_total_mb"`
	NumGC        uint32 `json:"num_gc"`
}

// EngineMetrics surfaces the size of the style engine's registry data and
// the state of the LLM collaborators.
type EngineMetrics struct {
	Genres     int                    `json:"genres"`
	Sections   int                    `json:"sections"`
	StyleAxes  int                    `json:"style_axes"`
	TitleWords int                    `json:"title_words"`
	LLMEnhance map[string]interface{} `json:"llm_enhance"`
}

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	words := registry.TitleWordPools()

	c.JSON(http.StatusOK, MetricsResponse{
		Status:    "healthy",
		Uptime:    time.Since(h.startTime).Round(10 * time.Millisecond).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		StartTime: h.startTime.UTC().Format(time.RFC3339),
		System: SystemMetrics{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAllocMB:   m.Alloc / bytesPerMB,
			MemTotalMB:   m.TotalAlloc / bytesPerMB,
			NumGC:        m.NumGC,
		},
		Engine: EngineMetrics{
			Genres:     len(registry.GenreKeys()),
			Sections:   len(registry.SectionSequence()),
			StyleAxes:  len(registry.StyleAxes()),
			TitleWords: len(words.Adjectives) + len(words.Nouns) + len(words.Images),
			LLMEnhance: map[string]interface{}{
				"enabled": h.cfg.LLMEnhanceEnabled,
				"model":   h.cfg.DefaultModel,
			},
		},
	})
}
