package services

// LLMStage represents which LLM-backed task we're running
type LLMStage string

const (
	LLMStageEnhance LLMStage = "enhance"
	LLMStageTitle   LLMStage = "title"
)

// Reasoning effort constants
const (
	reasoningEffortMinimal = "minimal"
	reasoningEffortLow     = "low"
)

const fallbackModel = "gpt-5-mini"

// LLMParameters contains the per-stage configuration for provider calls
type LLMParameters struct {
	Model         string
	ReasoningMode string
}

// GetLLMParameters returns the appropriate parameters for each stage.
// The enhancement call wants the fastest structured output; titles get a
// little more reasoning headroom for wordplay.
func GetLLMParameters(stage LLMStage, configuredModel string) LLMParameters {
	model := configuredModel
	if model == "" {
		model = fallbackModel
	}

	switch stage {
	case LLMStageEnhance:
		return LLMParameters{
			Model:         model,
			ReasoningMode: reasoningEffortMinimal,
		}

	case LLMStageTitle:
		fallthrough
	default:
		return LLMParameters{
			Model:         model,
			ReasoningMode: reasoningEffortLow,
		}
	}
}
