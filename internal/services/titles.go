package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/llm"
	"github.com/tonecraft-ai/tonecraft-api/internal/metrics"
	"github.com/tonecraft-ai/tonecraft-api/internal/models"
	"github.com/tonecraft-ai/tonecraft-api/internal/observability"
	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

const (
	titleTimeout       = 15 * time.Second
	instrumentalLyrics = "[Instrumental]"
)

// titleOutput mirrors llm.GetTitleOutputSchema
type titleOutput struct {
	Title  string `json:"title"`
	Lyrics string `json:"lyrics"`
}

// TitleService names tracks. The LLM path produces a title and optional
// lyrics; the word-pool generator covers every failure, so a title always
// comes back.
type TitleService struct {
	cfg      *config.Config
	factory  *llm.ProviderFactory
	loader   *prompt.Loader
	usage    *UsageService
	metrics  *metrics.SentryMetrics
	provider llm.Provider // non-nil pins the provider instead of factory lookup
}

// NewTitleService creates a title service resolving providers by model
func NewTitleService(cfg *config.Config, db *gorm.DB) *TitleService {
	return NewTitleServiceWithProvider(cfg, db, nil)
}

// NewTitleServiceWithProvider creates a title service with a specific LLM provider
func NewTitleServiceWithProvider(cfg *config.Config, db *gorm.DB, provider llm.Provider) *TitleService {
	return &TitleService{
		cfg:      cfg,
		factory:  llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey),
		loader:   prompt.NewPromptLoader(),
		usage:    NewUsageService(db),
		metrics:  metrics.NewSentryMetrics(),
		provider: provider,
	}
}

// TitleRequest carries the parameters for one title generation
type TitleRequest struct {
	Description string
	Seed        *uint64 // nil draws a time-based seed; only the fallback consumes it
	WithLyrics  bool
	Model       string
	UserID      string
	RequestID   string
}

// TitleResult is the outcome of one title generation
type TitleResult struct {
	Title    string
	Lyrics   string
	Fallback bool   // word-pool generator used
	Model    string // model consulted; empty when no LLM call happened
	Seed     uint64
}

// Generate names a track from its description. The LLM runs when lyrics are
// requested or enrichment is enabled; otherwise, and on any LLM failure, the
// seeded word-pool generator answers.
func (s *TitleService) Generate(ctx context.Context, req *TitleRequest) (*TitleResult, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("description is required")
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}

	transaction := sentry.StartTransaction(ctx, "title.generate")
	defer transaction.Finish()

	model := req.Model
	if model == "" {
		model = s.cfg.DefaultModel
	}

	if req.WithLyrics || s.cfg.LLMEnhanceEnabled {
		out, err := s.compose(ctx, model, req)
		if err != nil {
			log.Printf("⚠️  Title generation failed, using word-pool fallback: %v", err)
			sentry.CaptureException(err)
			s.logFallback(model, req)
		} else {
			transaction.SetTag("fallback", "false")
			return &TitleResult{
				Title:  out.Title,
				Lyrics: out.Lyrics,
				Model:  model,
				Seed:   seed,
			}, nil
		}
	}

	transaction.SetTag("fallback", "true")
	return &TitleResult{
		Title:    prompt.GenerateTitle(rng.New(seed)),
		Lyrics:   instrumentalLyrics,
		Fallback: true,
		Seed:     seed,
	}, nil
}

// compose asks the LLM for a title/lyrics pair, bounded by titleTimeout.
func (s *TitleService) compose(ctx context.Context, model string, req *TitleRequest) (*titleOutput, error) {
	startTime := time.Now()

	provider := s.provider
	if provider == nil {
		var err error
		provider, err = s.factory.GetProvider(ctx, model, "")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve provider: %w", err)
		}
	}

	systemPrompt, err := s.loader.GetTitleSystemPrompt()
	if err != nil {
		return nil, fmt.Errorf("failed to load system prompt: %w", err)
	}

	params := GetLLMParameters(LLMStageTitle, model)

	content := fmt.Sprintf("Track description:\n%s", req.Description)
	if !req.WithLyrics {
		content += "\n\nThis track is instrumental: return \"[Instrumental]\" as the lyrics."
	}

	callCtx, cancel := context.WithTimeout(ctx, titleTimeout)
	defer cancel()

	request := &llm.GenerationRequest{
		Model:         params.Model,
		ReasoningMode: params.ReasoningMode,
		SystemPrompt:  systemPrompt,
		InputArray: []map[string]any{
			{
				"role":    "user",
				"content": content,
			},
		},
		OutputSchema: &llm.OutputSchema{
			Name:        "track_title",
			Description: "Track title and lyrics",
			Schema:      llm.GetTitleOutputSchema(),
		},
	}

	trace := observability.GetClient().StartTrace(ctx, "title.compose", map[string]interface{}{
		"request_id": req.RequestID,
	})
	defer trace.Finish()

	gen := trace.Generation("track_title", map[string]interface{}{
		"reasoning_mode": params.ReasoningMode,
		"with_lyrics":    req.WithLyrics,
	})
	gen.Model(params.Model)
	gen.Input(request.InputArray)

	resp, err := provider.Generate(callCtx, request)
	if err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	if resp == nil || resp.RawOutput == "" {
		gen.SetLevel("ERROR")
		gen.Finish()
		return nil, fmt.Errorf("empty response from LLM")
	}

	var out titleOutput
	if err := json.Unmarshal([]byte(resp.RawOutput), &out); err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if strings.TrimSpace(out.Title) == "" {
		gen.SetLevel("ERROR")
		gen.Finish()
		return nil, fmt.Errorf("title response missing title")
	}
	if strings.TrimSpace(out.Lyrics) == "" {
		out.Lyrics = instrumentalLyrics
	}

	input, output, total := llm.TokenCounts(resp.Usage)
	cost := observability.CalculateCost(params.Model, input, output)
	gen.Output(resp.RawOutput)
	gen.Usage(map[string]interface{}{
		"input_tokens":  input,
		"output_tokens": output,
		"total_tokens":  total,
		"cost_usd":      cost,
	})
	gen.Finish()

	s.metrics.RecordTokenUsage(ctx, provider.Name(), params.Model, total, input, output)

	row := &models.LLMUsageLog{
		Purpose:      string(LLMStageTitle),
		Provider:     provider.Name(),
		Model:        params.Model,
		InputTokens:  input,
		OutputTokens: output,
		TotalTokens:  total,
		CostUSD:      cost,
		DurationMS:   time.Since(startTime).Milliseconds(),
		RequestID:    req.RequestID,
		UserID:       req.UserID,
	}
	if err := s.usage.LogUsage(row); err != nil {
		log.Printf("⚠️  Failed to log LLM usage: %v", err)
	}

	return &out, nil
}

// logFallback records a degraded title request so usage stats count it.
func (s *TitleService) logFallback(model string, req *TitleRequest) {
	row := &models.LLMUsageLog{
		Purpose:   string(LLMStageTitle),
		Model:     model,
		Fallback:  true,
		RequestID: req.RequestID,
		UserID:    req.UserID,
	}
	if err := s.usage.LogUsage(row); err != nil {
		log.Printf("⚠️  Failed to log LLM usage: %v", err)
	}
}
