package registry

import (
	"encoding/json"
	"sync"

	"github.com/tonecraft-ai/tonecraft-api/pkg/embedded"
)

var (
	progressionsOnce sync.Once
	progressions     map[string][]string

	titleWordsOnce sync.Once
	titleWords     TitleWords
)

// TitleWords holds the deterministic title-generator pools parsed from the
// embedded payload.
type TitleWords struct {
	Adjectives []string `json:"adjectives"`
	Nouns      []string `json:"nouns"`
	Images     []string `json:"images"`
	Patterns   []string `json:"patterns"`
}

func loadProgressions() {
	if err := json.Unmarshal(embedded.ProgressionsJSON, &progressions); err != nil {
		// Embedded data is compiled in; a parse failure is a build defect.
		panic("registry: progressions.json is malformed: " + err.Error())
	}
	if len(progressions["default"]) == 0 {
		panic("registry: progressions.json has no default progressions")
	}
}

// ChordProgressions returns the progression catalog entries for a genre,
// falling back to the default list for unknown keys.
func ChordProgressions(genreKey string) []string {
	progressionsOnce.Do(loadProgressions)
	list, ok := progressions[genreKey]
	if !ok || len(list) == 0 {
		list = progressions["default"]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func loadTitleWords() {
	if err := json.Unmarshal(embedded.TitleWordsJSON, &titleWords); err != nil {
		panic("registry: title_words.json is malformed: " + err.Error())
	}
	if len(titleWords.Adjectives) == 0 || len(titleWords.Nouns) == 0 ||
		len(titleWords.Images) == 0 || len(titleWords.Patterns) == 0 {
		panic("registry: title_words.json is missing a pool")
	}
}

// TitleWordPools returns the title-generator word pools.
func TitleWordPools() TitleWords {
	titleWordsOnce.Do(loadTitleWords)
	return titleWords
}

// vocalStyles maps genres to vocal-style phrases for the MAX-mode
// instruments injection. Genres without an entry use the generic pool.
var vocalStyles = map[string][]string{
	"jazz":      {"smoky female jazz vocals", "crooning male vocals", "scat vocal phrases"},
	"blues":     {"gravelly blues vocals", "wailing soulful vocals"},
	"soul":      {"powerhouse soul vocals", "gospel-tinged lead vocals"},
	"rnb":       {"silky r&b vocals", "breathy layered harmonies"},
	"rock":      {"raspy rock vocals", "anthemic lead vocals"},
	"metal":     {"aggressive harsh vocals", "soaring clean metal vocals"},
	"punk":      {"shouted punk vocals", "snotty sneering vocals"},
	"pop":       {"bright polished pop vocals", "stacked pop harmonies"},
	"indie":     {"hushed indie vocals", "lazy conversational vocals"},
	"folk":      {"intimate folk vocals", "close harmony duet"},
	"country":   {"twangy country vocals", "warm storytelling vocals"},
	"reggae":    {"laid-back patois vocals", "dubby echoing vocals"},
	"trap":      {"autotuned melodic vocals", "hard-edged rap delivery"},
	"house":     {"soulful diva vocals", "filtered vocal hooks"},
	"trance":    {"ethereal female vocals", "soaring trance vocals"},
	"synthwave": {"retro reverb-drenched vocals", "robotic vocoder lines"},
}

var genericVocalStyles = []string{
	"expressive lead vocals",
	"soft layered vocals",
	"instrumental, no vocals",
}

// VocalStyles returns the vocal-style pool for a genre, or the generic pool
// when none is curated.
func VocalStyles(genreKey string) []string {
	if list, ok := vocalStyles[genreKey]; ok {
		out := make([]string, len(list))
		copy(out, list)
		return out
	}
	out := make([]string, len(genericVocalStyles))
	copy(out, genericVocalStyles)
	return out
}
