package services

import (
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/classify"
	"github.com/tonecraft-ai/tonecraft-api/internal/compose"
	"github.com/tonecraft-ai/tonecraft-api/internal/models"
	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
	"github.com/tonecraft-ai/tonecraft-api/internal/selection"
)

// Generation modes
const (
	ModeMax      = "max"
	ModeStandard = "standard"
)

const (
	defaultDescriptorCount = 2
	maxGenreNames          = 4
)

// StyleService runs the deterministic generation pipeline: classify the
// description, select instruments and recording descriptors, compose
// sections (standard mode), assemble the prompt text. Every random decision
// flows through one seeded source, so a (description, seed) pair reproduces
// its output byte for byte. Persistence is optional: a nil db skips history
// rows.
type StyleService struct {
	db *gorm.DB
}

// NewStyleService creates a new style generation service
func NewStyleService(db *gorm.DB) *StyleService {
	return &StyleService{db: db}
}

// StyleRequest carries the parameters for one generation
type StyleRequest struct {
	Description      string
	Seed             *uint64 // nil draws a time-based seed
	MaxMode          bool
	Genres           []string // explicit genre overrides; first is primary
	Instruments      []string // explicit instrument picks, selected first
	DescriptorCount  int      // recording descriptors, clamped to [1,4]
	Scene            string   // recording context hint, e.g. "live club set"
	Contrast         []compose.SectionOverride
	NarrativeArc     []string
	TargetGenreCount int // >0 post-processes the genre field count
	WithTitle        bool
	UserID           string
	RequestID        string
}

// StyleResult is the structured outcome of one generation
type StyleResult struct {
	UUID        string
	Prompt      string
	Genre       string // primary genre key
	GenreNames  []string
	BPM         registry.BPMRange
	Mood        string
	Instruments []string
	StyleTags   []string
	Recording   []string
	Title       string
	Seed        uint64
	MaxMode     bool
}

// Generate runs the pipeline for one request
func (s *StyleService) Generate(req *StyleRequest) (*StyleResult, error) {
	startTime := time.Now()

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}
	src := rng.New(seed)

	classifier := classify.NewClassifier()
	classification := classifier.Classify(req.Description, src)

	genreKeys := s.resolveGenres(classifier, req.Genres, classification.Genre)
	primary := registry.GenreOrDefault(genreKeys[0])

	// Secondary genres contribute one optional instrument each, drawn from
	// their merged pools.
	var extraPools []registry.Pool
	for _, key := range genreKeys[1:] {
		extraPools = append(extraPools, registry.Pool{
			PickRange:   [2]int{0, 1},
			Instruments: collectInstruments(registry.GenreOrDefault(key)),
		})
	}

	instruments := selection.Instruments(primary, src, selection.InstrumentOptions{
		Explicit:   req.Instruments,
		ExtraPools: extraPools,
	})

	styleTags := classification.StyleTags()
	if len(styleTags) == 0 {
		styleTags = slices.Clone(primary.Moods[:min(2, len(primary.Moods))])
	}

	descriptorCount := req.DescriptorCount
	if descriptorCount <= 0 {
		descriptorCount = defaultDescriptorCount
	}
	recording := selection.RecordingDescriptors(primary.Key, descriptorCount, src)
	recording = append(recording, selection.RecordingContext(primary.Key, req.Scene, src))

	mood := strings.Join(req.NarrativeArc, " to ")
	if mood == "" {
		mood = primary.Moods[rng.Index(src, len(primary.Moods))]
	}

	genreNames := make([]string, 0, len(genreKeys))
	for _, key := range genreKeys {
		genreNames = append(genreNames, registry.GenreOrDefault(key).Name)
	}
	genreLine := strings.Join(genreNames, ", ")

	var text string
	if req.MaxMode {
		progressions := registry.ChordProgressions(primary.Key)
		vocals := registry.VocalStyles(primary.Key)
		text = prompt.BuildMax(prompt.Assembly{
			GenreName:   genreLine,
			BPM:         primary.BPM,
			Instruments: instruments,
			StyleTags:   styleTags,
			Recording:   recording,
			Progression: progressions[rng.Index(src, len(progressions))],
			VocalStyle:  vocals[rng.Index(src, len(vocals))],
		})
	} else {
		overrides := compose.BuildOverrides(req.Contrast, req.NarrativeArc)
		composed := compose.Compose(primary, overrides, src)
		text = prompt.BuildStandard(prompt.Assembly{
			GenreName:   genreLine,
			BPM:         primary.BPM,
			Mood:        mood,
			Instruments: instruments,
			Sections:    composed.Text,
		})
	}

	var title string
	if req.WithTitle {
		title = prompt.GenerateTitle(src)
	}

	if req.TargetGenreCount > 0 {
		text = prompt.EnforceGenreCount(text, req.TargetGenreCount, src)
	}

	result := &StyleResult{
		UUID:        uuid.New().String(),
		Prompt:      text,
		Genre:       primary.Key,
		GenreNames:  genreNames,
		BPM:         primary.BPM,
		Mood:        mood,
		Instruments: instruments,
		StyleTags:   styleTags,
		Recording:   recording,
		Title:       title,
		Seed:        seed,
		MaxMode:     req.MaxMode,
	}

	s.persist(req, result, time.Since(startTime))
	return result, nil
}

// resolveGenres maps explicit caller genres onto registry keys, falling back
// to the classified genre, then the default. The list is deduplicated and
// capped so the genre line never exceeds the enforcement bound.
func (s *StyleService) resolveGenres(classifier *classify.Classifier, explicit []string, classified string) []string {
	var keys []string
	for _, raw := range explicit {
		key, ok := resolveGenreKey(classifier, raw)
		if ok && !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
		if len(keys) == maxGenreNames {
			break
		}
	}
	if len(keys) > 0 {
		return keys
	}
	if classified != "" {
		return []string{classified}
	}
	return []string{registry.DefaultGenre().Key}
}

// resolveGenreKey accepts a registry key directly, otherwise runs the
// deterministic classifier stages over the raw string (no rng: an explicit
// override that matches nothing is dropped, never guessed).
func resolveGenreKey(classifier *classify.Classifier, raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := registry.GetGenre(key); ok {
		return key, true
	}
	return classifier.DetectGenre(raw, nil)
}

func collectInstruments(genre registry.GenreDefinition) []string {
	var out []string
	seen := map[string]bool{}
	for _, name := range genre.PoolOrder {
		for _, inst := range genre.Pools[name].Instruments {
			if !seen[inst] {
				out = append(out, inst)
				seen[inst] = true
			}
		}
	}
	return out
}

// persist writes the history row. Failures are logged, not returned: a dead
// database must not break generation.
func (s *StyleService) persist(req *StyleRequest, result *StyleResult, duration time.Duration) {
	if s.db == nil {
		return
	}

	mode := ModeStandard
	if result.MaxMode {
		mode = ModeMax
	}

	row := &models.StyleGeneration{
		UUID:        result.UUID,
		Description: req.Description,
		Seed:        result.Seed,
		Mode:        mode,
		Genre:       result.Genre,
		BPMMin:      result.BPM.Min,
		BPMMax:      result.BPM.Max,
		BPMTypical:  result.BPM.Typical,
		Instruments: strings.Join(result.Instruments, ", "),
		StyleTags:   strings.Join(result.StyleTags, ", "),
		Recording:   strings.Join(result.Recording, ", "),
		Prompt:      result.Prompt,
		Title:       result.Title,
		DurationMS:  duration.Milliseconds(),
		RequestID:   req.RequestID,
		UserID:      req.UserID,
	}
	if err := s.db.Create(row).Error; err != nil {
		log.Printf("⚠️  Failed to persist style generation %s: %v", result.UUID, err)
	}
}

// ErrHistoryDisabled is returned by history lookups when the service runs
// without a database.
var ErrHistoryDisabled = errors.New("generation history disabled")

// GetGeneration loads one history row by its public UUID
func (s *StyleService) GetGeneration(id string) (*models.StyleGeneration, error) {
	if s.db == nil {
		return nil, ErrHistoryDisabled
	}
	var row models.StyleGeneration
	if err := s.db.Where("uuid = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListGenerations returns recent history rows, newest first
func (s *StyleService) ListGenerations(userID string, limit int) ([]models.StyleGeneration, error) {
	if s.db == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := s.db.Order("created_at DESC").Limit(limit)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	var rows []models.StyleGeneration
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
