package llm

// GetEnhanceOutputSchema returns the JSON schema for the MAX enhancement call
// Note: OpenAI structured output requires additionalProperties: false and
// every property listed in 'required'
func GetEnhanceOutputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"styleTags": map[string]any{
				"type":        "string",
				"description": "Comma-separated style, mood, and technique tags matching the genre.",
			},
			"recording": map[string]any{
				"type":        "string",
				"description": "Comma-separated recording character phrases (e.g. warm analog tape).",
			},
		},
		"required":             []string{"styleTags", "recording"},
		"additionalProperties": false,
	}
}

// GetTitleOutputSchema returns the JSON schema for title/lyrics generation
func GetTitleOutputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Evocative track title, 1-5 words.",
			},
			"lyrics": map[string]any{
				"type":        "string",
				"description": "Song lyrics with section markers, or the string [Instrumental].",
			},
		},
		"required":             []string{"title", "lyrics"},
		"additionalProperties": false,
	}
}
