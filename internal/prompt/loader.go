package prompt

import (
	"strings"

	"github.com/tonecraft-ai/tonecraft-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetEnhanceSystemPrompt loads the system prompt for the MAX enhancement call
func (l *Loader) GetEnhanceSystemPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.EnhanceSystemPromptTxt)), nil
}

// GetTitleSystemPrompt loads the system prompt for title and lyrics generation
func (l *Loader) GetTitleSystemPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.TitleSystemPromptTxt)), nil
}
