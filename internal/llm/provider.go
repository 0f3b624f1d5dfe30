package llm

import (
	"context"

	"github.com/openai/openai-go/responses"
	"google.golang.org/genai"
)

// Provider defines the interface for LLM providers
// All providers MUST support structured output (JSON Schema) for reliable response parsing
type Provider interface {
	// Generate runs one completion with structured output
	// The provider MUST enforce the OutputSchema to ensure valid JSON responses
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model         string
	InputArray    []map[string]any
	ReasoningMode string
	SystemPrompt  string
	// Structured output schema - REQUIRED for reliable JSON parsing
	OutputSchema *OutputSchema
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	RawOutput string `json:"-"` // Raw JSON text output, parsed by the caller
	Usage     any    `json:"usage"`
}

// TokenCounts normalizes the provider-specific usage payload into plain
// token counts for logging and cost calculation. Unknown payloads count as
// zero.
func TokenCounts(usage any) (input, output, total int64) {
	switch u := usage.(type) {
	case responses.ResponseUsage:
		return u.InputTokens, u.OutputTokens, u.TotalTokens
	case *genai.GenerateContentResponseUsageMetadata:
		if u == nil {
			return 0, 0, 0
		}
		return int64(u.PromptTokenCount), int64(u.CandidatesTokenCount), int64(u.TotalTokenCount)
	}
	return 0, 0, 0
}
