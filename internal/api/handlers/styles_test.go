package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
)

// setupTestRouter builds a minimal router with no database and the LLM
// collaborators disabled, so every test runs offline and deterministically.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:       "test",
		DefaultModel:      "gpt-5-mini",
		LLMEnhanceEnabled: false,
		AuthMode:          "none",
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", HealthCheck(nil, cfg))

	styleHandler := NewStyleHandler(nil, cfg, nil)
	titleHandler := NewTitleHandler(nil, cfg, nil)
	generationsHandler := NewGenerationsHandler(nil)

	v1 := router.Group("/api/v1")
	v1.POST("/styles/generations", styleHandler.Generate)
	v1.POST("/styles/max-conversions", styleHandler.ConvertToMax)
	v1.POST("/styles/enforce-genres", styleHandler.EnforceGenres)
	v1.GET("/styles/genres", styleHandler.ListGenres)
	v1.POST("/titles", titleHandler.Generate)
	v1.GET("/generations", generationsHandler.List)
	v1.GET("/generations/:uuid", generationsHandler.Get)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter()

	w := getJSON(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "healthy", response["status"])

	database, ok := response["database"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "disabled", database["status"])

	llm, ok := response["llm_enhance"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "disabled", llm["status"])
	assert.Equal(t, "gpt-5-mini", llm["model"])
}

func TestGenerateStyle(t *testing.T) {
	router := setupTestRouter()

	seed := uint64(42)
	w := postJSON(t, router, "/api/v1/styles/generations", GenerateStyleRequest{
		Description: "smooth jazz night session",
		Seed:        &seed,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp StyleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "jazz", resp.Genre)
	assert.Equal(t, "standard", resp.Mode)
	assert.Equal(t, seed, resp.Seed)
	assert.NotEmpty(t, resp.UUID)
	assert.NotEmpty(t, resp.Prompt)
	assert.NotEmpty(t, resp.Mood)
	assert.NotEmpty(t, resp.Instruments)
	assert.True(t, resp.BPM.Min <= resp.BPM.Typical && resp.BPM.Typical <= resp.BPM.Max,
		"typical BPM %d outside range %d-%d", resp.BPM.Typical, resp.BPM.Min, resp.BPM.Max)
}

func TestGenerateStyleDeterministic(t *testing.T) {
	router := setupTestRouter()

	seed := uint64(7)
	body := GenerateStyleRequest{
		Description: "deep house vibes",
		Seed:        &seed,
		WithTitle:   true,
	}

	first := postJSON(t, router, "/api/v1/styles/generations", body)
	require.Equal(t, http.StatusOK, first.Code)
	second := postJSON(t, router, "/api/v1/styles/generations", body)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b StyleResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))

	// Everything except the per-request UUID must match.
	assert.Equal(t, a.Prompt, b.Prompt)
	assert.Equal(t, a.Genre, b.Genre)
	assert.Equal(t, a.Mood, b.Mood)
	assert.Equal(t, a.Instruments, b.Instruments)
	assert.Equal(t, a.Title, b.Title)
	assert.NotEmpty(t, a.Title)
}

func TestGenerateStyleModeAgreement(t *testing.T) {
	router := setupTestRouter()

	seed := uint64(99)
	standard := postJSON(t, router, "/api/v1/styles/generations", GenerateStyleRequest{
		Description: "warehouse techno all night",
		Seed:        &seed,
	})
	require.Equal(t, http.StatusOK, standard.Code)

	max := postJSON(t, router, "/api/v1/styles/generations", GenerateStyleRequest{
		Description: "warehouse techno all night",
		Seed:        &seed,
		Mode:        "max",
	})
	require.Equal(t, http.StatusOK, max.Code)

	var std, mx StyleResponse
	require.NoError(t, json.Unmarshal(standard.Body.Bytes(), &std))
	require.NoError(t, json.Unmarshal(max.Body.Bytes(), &mx))

	// The two encodings of one seeded request describe the same track.
	assert.Equal(t, std.Genre, mx.Genre)
	assert.Equal(t, std.BPM, mx.BPM)
	assert.Equal(t, std.Mood, mx.Mood)

	assert.Equal(t, "max", mx.Mode)
	assert.True(t, strings.HasPrefix(mx.Prompt, prompt.MaxSignature), "max prompt missing signature: %s", mx.Prompt)
	assert.True(t, strings.HasPrefix(std.Prompt, "Genre: "), "standard prompt missing header: %s", std.Prompt)
}

func TestGenerateStyleInvalidMode(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/styles/generations", GenerateStyleRequest{
		Description: "anything",
		Mode:        "turbo",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid mode")
}

func TestGenerateStyleInvalidContrastSection(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/styles/generations", GenerateStyleRequest{
		Description: "anything",
		Contrast:    []ContrastEntry{{Section: "SOLO", Mood: "wild"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid section")
}

func TestGenerateStyleExplicitGenres(t *testing.T) {
	router := setupTestRouter()

	seed := uint64(5)
	w := postJSON(t, router, "/api/v1/styles/generations", GenerateStyleRequest{
		Seed:   &seed,
		Genres: []string{"techno", "ambient"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp StyleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "techno", resp.Genre)
	assert.Contains(t, resp.GenreNames, "Techno")
}

func TestGenerateStyleGenreCount(t *testing.T) {
	router := setupTestRouter()

	seed := uint64(13)
	w := postJSON(t, router, "/api/v1/styles/generations", GenerateStyleRequest{
		Description: "smooth jazz night session",
		Seed:        &seed,
		GenreCount:  3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp StyleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	fields := prompt.ParseStandard(resp.Prompt)
	genres := strings.Split(fields.Genre, ", ")
	assert.Len(t, genres, 3, "genre line: %q", fields.Genre)
}

func TestConvertToMax(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/styles/max-conversions", ConvertMaxRequest{
		Text: "Genre: Jazz\nBPM: 120 BPM\nInstruments: piano, upright bass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	promptText, ok := resp["prompt"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(promptText, prompt.MaxSignature))
	assert.Contains(t, promptText, `genre: "Jazz"`)

	// LLM disabled: the fixed enrichment pair fills the gap.
	assert.Equal(t, true, resp["fallback"])
	assert.Equal(t, false, resp["already_max"])
	assert.Equal(t, "", resp["model"])
}

func TestConvertToMaxPassthrough(t *testing.T) {
	router := setupTestRouter()

	maxText := prompt.MaxSignature + "\n" + `genre: "Techno"` + "\n" + `bpm: "130 BPM"`
	w := postJSON(t, router, "/api/v1/styles/max-conversions", ConvertMaxRequest{Text: maxText})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, true, resp["already_max"])
	assert.Equal(t, false, resp["fallback"])
	assert.Equal(t, maxText, resp["prompt"])
}

func TestConvertToMaxInvalidModel(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/styles/max-conversions", ConvertMaxRequest{
		Text:  "Genre: Jazz",
		Model: "gpt-4",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid model")
}

func TestConvertToMaxRequiresText(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/styles/max-conversions", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnforceGenres(t *testing.T) {
	router := setupTestRouter()

	seed := uint64(7)
	w := postJSON(t, router, "/api/v1/styles/enforce-genres", EnforceGenresRequest{
		Prompt: "Genre: Jazz\nBPM: 120 BPM",
		Count:  3,
		Seed:   &seed,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Prompt string `json:"prompt"`
		Seed   uint64 `json:"seed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, seed, resp.Seed)

	fields := prompt.ParseStandard(resp.Prompt)
	genres := strings.Split(fields.Genre, ", ")
	require.Len(t, genres, 3, "genre line: %q", fields.Genre)
	assert.Equal(t, "Jazz", genres[0])
}

func TestEnforceGenresRequiresCount(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/styles/enforce-genres", map[string]interface{}{
		"prompt": "Genre: Jazz",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListGenres(t *testing.T) {
	router := setupTestRouter()

	w := getJSON(t, router, "/api/v1/styles/genres")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Genres []GenreSummary `json:"genres"`
		Count  int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, len(resp.Genres), resp.Count)
	assert.NotEmpty(t, resp.Genres)

	var jazz *GenreSummary
	for i := range resp.Genres {
		if resp.Genres[i].Key == "jazz" {
			jazz = &resp.Genres[i]
			break
		}
	}
	require.NotNil(t, jazz, "jazz missing from catalog")
	assert.Equal(t, "Jazz", jazz.Name)
	assert.NotEmpty(t, jazz.Moods)
	assert.Greater(t, jazz.MaxTags, 0)
}
