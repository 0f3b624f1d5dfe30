package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/llm"
	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
)

// stubProvider pins the provider seam so no network is touched.
type stubProvider struct {
	name string
	resp *llm.GenerationResponse
	err  error
	last *llm.GenerationRequest
}

func (p *stubProvider) Generate(_ context.Context, req *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	p.last = req
	if p.err != nil {
		return nil, p.err
	}
	return p.resp, nil
}

func (p *stubProvider) Name() string {
	if p.name == "" {
		return "stub"
	}
	return p.name
}

const standardText = `Genre: Jazz
BPM: 85-140 BPM
Mood: smoky with wistful undertones
Instruments: saxophone, upright bass, brushed drums

[INTRO] gentle piano enters
[VERSE] bass walks beneath soft keys
[CHORUS] full band swells
[BRIDGE] saxophone takes a solo
[OUTRO] fade on brushed drums`

func enhanceConfig(enabled bool) *config.Config {
	return &config.Config{DefaultModel: "gpt-5-mini", LLMEnhanceEnabled: enabled}
}

func TestConvertToMaxPassthrough(t *testing.T) {
	maxText := prompt.BuildMaxFromFields(prompt.MaxFields{
		Genre:       "House",
		BPM:         "124 BPM",
		Instruments: "four-on-the-floor kick, analog synth bass",
		StyleTags:   "hypnotic, late night",
		Recording:   "club-ready master",
	})

	stub := &stubProvider{err: errors.New("must not be called")}
	svc := NewEnhanceServiceWithProvider(enhanceConfig(true), nil, stub)

	res, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: maxText})
	require.NoError(t, err)
	assert.True(t, res.AlreadyMax)
	assert.Equal(t, maxText, res.Prompt)
	assert.Nil(t, stub.last, "MAX input must pass through without an LLM call")
}

func TestConvertToMaxFallbackPairWhenDisabled(t *testing.T) {
	svc := NewEnhanceService(enhanceConfig(false), nil)

	res, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: standardText})
	require.NoError(t, err)
	assert.False(t, res.AlreadyMax)
	assert.True(t, res.Fallback)
	assert.Empty(t, res.Model)

	fields, ok := prompt.ParseMax(res.Prompt)
	require.True(t, ok)
	assert.Equal(t, "Jazz", fields.Genre)
	assert.Equal(t, "85-140 BPM", fields.BPM)
	assert.Equal(t, "saxophone, upright bass, brushed drums", fields.Instruments)
	assert.Equal(t, defaultEnhanceStyleTags, fields.StyleTags)
	assert.Equal(t, defaultEnhanceRecording, fields.Recording)
}

func TestConvertToMaxEnriched(t *testing.T) {
	stub := &stubProvider{
		resp: &llm.GenerationResponse{RawOutput: `{"styleTags":"warm and mellow","recording":"analog tape saturation"}`},
	}
	svc := NewEnhanceServiceWithProvider(enhanceConfig(true), nil, stub)

	res, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: standardText})
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, "gpt-5-mini", res.Model)

	fields, ok := prompt.ParseMax(res.Prompt)
	require.True(t, ok)
	assert.Equal(t, "warm and mellow", fields.StyleTags)
	assert.Equal(t, "analog tape saturation", fields.Recording)
	assert.Equal(t, "Jazz", fields.Genre)

	require.NotNil(t, stub.last)
	assert.Equal(t, "gpt-5-mini", stub.last.Model)
	assert.Equal(t, "minimal", stub.last.ReasoningMode)
	require.NotNil(t, stub.last.OutputSchema)
	assert.Equal(t, "style_enrichment", stub.last.OutputSchema.Name)
	assert.NotEmpty(t, stub.last.SystemPrompt)
	require.Len(t, stub.last.InputArray, 1)
	content, _ := stub.last.InputArray[0]["content"].(string)
	assert.Contains(t, content, "Jazz")
	assert.Contains(t, content, "smoky")
}

func TestConvertToMaxProviderErrorFallsBack(t *testing.T) {
	stub := &stubProvider{err: errors.New("rate limited")}
	svc := NewEnhanceServiceWithProvider(enhanceConfig(true), nil, stub)

	res, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: standardText})
	require.NoError(t, err)
	assert.True(t, res.Fallback)

	fields, ok := prompt.ParseMax(res.Prompt)
	require.True(t, ok)
	assert.Equal(t, defaultEnhanceStyleTags, fields.StyleTags)
	assert.Equal(t, defaultEnhanceRecording, fields.Recording)
}

func TestConvertToMaxMalformedJSONFallsBack(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		`{"styleTags":"only tags","recording":""}`,
		"",
	} {
		stub := &stubProvider{resp: &llm.GenerationResponse{RawOutput: raw}}
		svc := NewEnhanceServiceWithProvider(enhanceConfig(true), nil, stub)

		res, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: standardText})
		require.NoError(t, err, "raw=%q", raw)
		assert.True(t, res.Fallback, "raw=%q", raw)
	}
}

func TestConvertToMaxFreeFormText(t *testing.T) {
	svc := NewEnhanceService(enhanceConfig(false), nil)

	res, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: "deep house vibes all night"})
	require.NoError(t, err)

	fields, ok := prompt.ParseMax(res.Prompt)
	require.True(t, ok)
	assert.Equal(t, "House", fields.Genre)
	assert.Equal(t, fmt.Sprintf("%d BPM", registry.GenreOrDefault("house").BPM.Typical), fields.BPM)
	assert.NotEmpty(t, fields.Instruments)
}

func TestConvertToMaxUnrecognizableText(t *testing.T) {
	svc := NewEnhanceService(enhanceConfig(false), nil)

	res, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: "zzz qqq vvv"})
	require.NoError(t, err)

	fields, ok := prompt.ParseMax(res.Prompt)
	require.True(t, ok)
	assert.Equal(t, registry.DefaultGenre().Name, fields.Genre)
	assert.NotEmpty(t, fields.Instruments)
}

func TestConvertToMaxEmptyText(t *testing.T) {
	svc := NewEnhanceService(enhanceConfig(false), nil)
	_, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: "   "})
	assert.Error(t, err)
}

func TestConvertToMaxDeterministicWithoutLLM(t *testing.T) {
	svc := NewEnhanceService(enhanceConfig(false), nil)

	a, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: standardText})
	require.NoError(t, err)
	b, err := svc.ConvertToMax(context.Background(), &ConvertRequest{Text: standardText})
	require.NoError(t, err)
	assert.Equal(t, a.Prompt, b.Prompt)
	assert.True(t, strings.HasPrefix(a.Prompt, prompt.MaxSignature))
}
