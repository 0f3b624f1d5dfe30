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

	"github.com/tonecraft-ai/tonecraft-api/internal/classify"
	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/llm"
	"github.com/tonecraft-ai/tonecraft-api/internal/metrics"
	"github.com/tonecraft-ai/tonecraft-api/internal/models"
	"github.com/tonecraft-ai/tonecraft-api/internal/observability"
	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
)

// Fallback enrichment pair, substituted whenever the LLM path is disabled,
// times out, or returns anything unusable.
const (
	defaultEnhanceStyleTags = "expressive dynamics, polished arrangement"
	defaultEnhanceRecording = "balanced studio mix, clean master"
)

const enhanceTimeout = 15 * time.Second

// enhanceOutput mirrors llm.GetEnhanceOutputSchema
type enhanceOutput struct {
	StyleTags string `json:"styleTags"`
	Recording string `json:"recording"`
}

// EnhanceService converts arbitrary prompt text into MAX format. Parsing
// and assembly are deterministic; only the styleTags/recording enrichment
// goes through the LLM, and any failure there degrades to the fixed pair.
type EnhanceService struct {
	cfg      *config.Config
	factory  *llm.ProviderFactory
	loader   *prompt.Loader
	usage    *UsageService
	metrics  *metrics.SentryMetrics
	provider llm.Provider // non-nil pins the provider instead of factory lookup
}

// NewEnhanceService creates an enhance service resolving providers by model
func NewEnhanceService(cfg *config.Config, db *gorm.DB) *EnhanceService {
	return NewEnhanceServiceWithProvider(cfg, db, nil)
}

// NewEnhanceServiceWithProvider creates an enhance service with a specific LLM provider
func NewEnhanceServiceWithProvider(cfg *config.Config, db *gorm.DB, provider llm.Provider) *EnhanceService {
	return &EnhanceService{
		cfg:      cfg,
		factory:  llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey),
		loader:   prompt.NewPromptLoader(),
		usage:    NewUsageService(db),
		metrics:  metrics.NewSentryMetrics(),
		provider: provider,
	}
}

// ConvertRequest carries the parameters for one MAX conversion
type ConvertRequest struct {
	Text      string
	Model     string // optional override of the configured default
	UserID    string
	RequestID string
}

// ConvertResult is the outcome of one MAX conversion
type ConvertResult struct {
	Prompt     string
	AlreadyMax bool   // input was MAX format and passed through unchanged
	Fallback   bool   // fixed enrichment pair used
	Model      string // model consulted; empty when no LLM call happened
}

// ConvertToMax rewrites text into MAX format. Input already in MAX format
// passes through unchanged.
func (s *EnhanceService) ConvertToMax(ctx context.Context, req *ConvertRequest) (*ConvertResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	if prompt.IsMaxFormat(text) {
		return &ConvertResult{Prompt: text, AlreadyMax: true}, nil
	}

	transaction := sentry.StartTransaction(ctx, "enhance.convert")
	defer transaction.Finish()

	fields := baseFields(text)

	model := req.Model
	if model == "" {
		model = s.cfg.DefaultModel
	}

	enriched := enhanceOutput{StyleTags: defaultEnhanceStyleTags, Recording: defaultEnhanceRecording}
	fallback := true
	usedModel := ""
	if s.cfg.LLMEnhanceEnabled {
		out, err := s.enrich(ctx, model, text, fields, req)
		if err != nil {
			log.Printf("⚠️  Enhance enrichment failed, using fallback pair: %v", err)
			sentry.CaptureException(err)
			s.logFallback(model, req)
		} else {
			enriched = *out
			fallback = false
		}
		usedModel = model
	}

	fields.StyleTags = enriched.StyleTags
	fields.Recording = enriched.Recording

	transaction.SetTag("fallback", fmt.Sprintf("%t", fallback))

	return &ConvertResult{
		Prompt:   prompt.BuildMaxFromFields(fields),
		Fallback: fallback,
		Model:    usedModel,
	}, nil
}

// baseFields derives the deterministic MAX fields from whatever the input
// yields: parsed standard headers where present, registry defaults for the
// rest. BPM and instrument strings pass through verbatim when parsed.
func baseFields(text string) prompt.MaxFields {
	parsed := prompt.ParseStandard(text)

	fields := prompt.MaxFields{
		Genre:       parsed.Genre,
		BPM:         parsed.BPM,
		Instruments: parsed.Instruments,
	}

	classifier := classify.NewClassifier()
	genre := registry.DefaultGenre()
	if fields.Genre == "" {
		if key, ok := classifier.DetectGenre(text, nil); ok {
			genre = registry.GenreOrDefault(key)
		}
		fields.Genre = genre.Name
	} else if key, ok := classifier.DetectGenre(fields.Genre, nil); ok {
		genre = registry.GenreOrDefault(key)
	}

	if fields.BPM == "" {
		fields.BPM = fmt.Sprintf("%d BPM", genre.BPM.Typical)
	}
	if fields.Instruments == "" {
		insts := collectInstruments(genre)
		fields.Instruments = strings.Join(insts[:min(4, len(insts))], ", ")
	}
	return fields
}

// enrich asks the LLM for styleTags and recording strings. The call is
// bounded by enhanceTimeout; every failure path returns an error so the
// caller can substitute the fallback pair.
func (s *EnhanceService) enrich(ctx context.Context, model, text string, fields prompt.MaxFields, req *ConvertRequest) (*enhanceOutput, error) {
	startTime := time.Now()

	provider := s.provider
	if provider == nil {
		var err error
		provider, err = s.factory.GetProvider(ctx, model, "")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve provider: %w", err)
		}
	}

	systemPrompt, err := s.loader.GetEnhanceSystemPrompt()
	if err != nil {
		return nil, fmt.Errorf("failed to load system prompt: %w", err)
	}

	params := GetLLMParameters(LLMStageEnhance, model)

	callCtx, cancel := context.WithTimeout(ctx, enhanceTimeout)
	defer cancel()

	request := &llm.GenerationRequest{
		Model:         params.Model,
		ReasoningMode: params.ReasoningMode,
		SystemPrompt:  systemPrompt,
		InputArray: []map[string]any{
			{
				"role":    "user",
				"content": buildEnhanceUserPrompt(text, fields),
			},
		},
		OutputSchema: &llm.OutputSchema{
			Name:        "style_enrichment",
			Description: "Style tag and recording descriptor enrichment",
			Schema:      llm.GetEnhanceOutputSchema(),
		},
	}

	trace := observability.GetClient().StartTrace(ctx, "enhance.enrich", map[string]interface{}{
		"request_id": req.RequestID,
	})
	defer trace.Finish()

	gen := trace.Generation("style_enrichment", map[string]interface{}{
		"reasoning_mode": params.ReasoningMode,
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

	var out enhanceOutput
	if err := json.Unmarshal([]byte(resp.RawOutput), &out); err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if strings.TrimSpace(out.StyleTags) == "" || strings.TrimSpace(out.Recording) == "" {
		gen.SetLevel("ERROR")
		gen.Finish()
		return nil, fmt.Errorf("enrichment response missing fields")
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
	s.logUsage(provider.Name(), params.Model, input, output, total, cost, time.Since(startTime), req)

	return &out, nil
}

func buildEnhanceUserPrompt(text string, fields prompt.MaxFields) string {
	return fmt.Sprintf(`## Style Conversion Request

Genre: %s
BPM: %s
Instruments: %s

### Original Prompt
%s

Provide styleTags and recording descriptor strings for this style.`, fields.Genre, fields.BPM, fields.Instruments, text)
}

func (s *EnhanceService) logUsage(providerName, model string, input, output, total int64, cost float64, duration time.Duration, req *ConvertRequest) {
	row := &models.LLMUsageLog{
		Purpose:      string(LLMStageEnhance),
		Provider:     providerName,
		Model:        model,
		InputTokens:  input,
		OutputTokens: output,
		TotalTokens:  total,
		CostUSD:      cost,
		DurationMS:   duration.Milliseconds(),
		RequestID:    req.RequestID,
		UserID:       req.UserID,
	}
	if err := s.usage.LogUsage(row); err != nil {
		log.Printf("⚠️  Failed to log LLM usage: %v", err)
	}
}

// logFallback records a degraded conversion so usage stats count it.
func (s *EnhanceService) logFallback(model string, req *ConvertRequest) {
	row := &models.LLMUsageLog{
		Purpose:   string(LLMStageEnhance),
		Model:     model,
		Fallback:  true,
		RequestID: req.RequestID,
		UserID:    req.UserID,
	}
	if err := s.usage.LogUsage(row); err != nil {
		log.Printf("⚠️  Failed to log LLM usage: %v", err)
	}
}
