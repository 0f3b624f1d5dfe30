package selection

import (
	"strings"

	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

// RecordingDescriptors picks count production descriptor phrases, one per
// category in fixed order: quality always, environment at count 2,
// technique at 3, character at 4. Each category yields at most one key, so
// contradictory pairs (analog + digital) cannot appear. Count is clamped to
// [1, 4].
func RecordingDescriptors(genreKey string, count int, src rng.Source) []string {
	if count < 1 {
		count = 1
	}
	if count > 4 {
		count = 4
	}

	out := make([]string, 0, count)
	out = append(out, pickDescriptor(registry.RecordingQuality(), "", src))
	if count >= 2 {
		bias, _ := registry.EnvironmentBias(genreKey)
		out = append(out, pickDescriptor(registry.RecordingEnvironment(), bias, src))
	}
	if count >= 3 {
		bias, _ := registry.TechniqueBias(genreKey)
		out = append(out, pickDescriptor(registry.RecordingTechnique(), bias, src))
	}
	if count >= 4 {
		out = append(out, pickDescriptor(registry.RecordingCharacter(), "", src))
	}
	return out
}

// pickDescriptor resolves one category to a phrase: the biased key when the
// genre implies one, a uniform key otherwise, then a uniform phrase within
// the key.
func pickDescriptor(cat registry.DescriptorCategory, biasKey string, src rng.Source) string {
	key := biasKey
	if key == "" {
		keys := cat.Keys()
		key = keys[rng.Index(src, len(keys))]
	}
	phrases, ok := cat.Phrases(key)
	if !ok {
		// A bias pointing at a missing key would be a table defect; the
		// registry validates against it, so fall back uniformly.
		keys := cat.Keys()
		key = keys[rng.Index(src, len(keys))]
		phrases, _ = cat.Phrases(key)
	}
	return phrases[rng.Index(src, len(phrases))]
}

// RecordingContext picks the single setting phrase. A scene string is
// scanned against the scene keyword table first and overrides everything on
// a hit; otherwise the genre's curated list is used, then the generic pool.
func RecordingContext(genreKey, scene string, src rng.Source) string {
	if scene != "" {
		lower := strings.ToLower(scene)
		for _, sc := range registry.SceneContexts() {
			if strings.Contains(lower, sc.Keyword) {
				return sc.Pool[rng.Index(src, len(sc.Pool))]
			}
		}
	}
	if curated, ok := registry.GenreContexts(genreKey); ok {
		return curated[rng.Index(src, len(curated))]
	}
	generic := registry.GenericContexts()
	return generic[rng.Index(src, len(generic))]
}
