// Package registry holds the static data tables the generation engine draws
// from: genre definitions with instrument pools and BPM ranges, the genre
// priority and alias tables, recording/production descriptor categories,
// section templates, style-detection axes, chord progressions, and title
// word pools. Everything here is immutable after process start.
package registry

import "fmt"

// BPMRange bounds a genre's tempo. Typical is the single value rendered in
// MAX-mode output; Min/Max render as the range in standard output.
type BPMRange struct {
	Min     int
	Max     int
	Typical int
}

// Pool is a named list of candidate instruments with a pick-count range and
// an optional inclusion probability. ChanceToInclude of 0 means the pool
// always contributes; any positive value gates the whole pool behind one
// random draw.
type Pool struct {
	PickRange       [2]int
	ChanceToInclude float64
	Instruments     []string
}

// GenreDefinition is the unit of genre configuration. Pools are iterated in
// PoolOrder; MaxTags caps the total instruments selected across all pools;
// ExclusionRules lists instrument groups that may not co-occur.
type GenreDefinition struct {
	Key            string
	Name           string
	Keywords       []string
	Description    string
	Pools          map[string]Pool
	PoolOrder      []string
	MaxTags        int
	ExclusionRules [][]string
	BPM            BPMRange
	Moods          []string
}

// GenreAlias maps a phrase that is not itself a genre keyword onto a genre
// key. Aliases are consulted only after the direct keyword scan misses.
type GenreAlias struct {
	Match string
	Genre string
}

// MoodFallback maps a mood keyword onto an ordered list of candidate genre
// keys, one of which is picked at random when nothing else matched.
type MoodFallback struct {
	Keyword string
	Genres  []string
}

// GetGenre looks up a genre definition by key.
func GetGenre(key string) (GenreDefinition, bool) {
	g, ok := genres[key]
	return g, ok
}

// GenreKeys returns all genre keys in classification priority order.
func GenreKeys() []string {
	out := make([]string, len(genrePriority))
	copy(out, genrePriority)
	return out
}

// GenreOrDefault resolves key, falling back to the default definition for
// unknown keys so callers never have to handle a miss.
func GenreOrDefault(key string) GenreDefinition {
	if g, ok := genres[key]; ok {
		return g
	}
	return defaultGenre
}

// DefaultGenre returns the fallback definition used when no genre was
// detected and the caller supplied none.
func DefaultGenre() GenreDefinition {
	return defaultGenre
}

// Aliases returns the alias table in scan order.
func Aliases() []GenreAlias {
	out := make([]GenreAlias, len(genreAliases))
	copy(out, genreAliases)
	return out
}

// MoodFallbacks returns the mood keyword table in scan order.
func MoodFallbacks() []MoodFallback {
	out := make([]MoodFallback, len(moodFallbacks))
	copy(out, moodFallbacks)
	return out
}

// Validate checks the cross-references inside the registry tables: every
// instrument named in an exclusion rule must live in one of that genre's
// pools, MaxTags must cover the pool minimums, the priority list must cover
// every genre exactly once, and alias/fallback targets must exist. It is run
// from tests; a failure means the tables were edited inconsistently.
func Validate() error {
	seen := make(map[string]bool, len(genrePriority))
	for _, key := range genrePriority {
		if seen[key] {
			return fmt.Errorf("registry: genre %q listed twice in priority order", key)
		}
		seen[key] = true
		if _, ok := genres[key]; !ok {
			return fmt.Errorf("registry: priority order names unknown genre %q", key)
		}
	}
	for key := range genres {
		if !seen[key] {
			return fmt.Errorf("registry: genre %q missing from priority order", key)
		}
	}

	for key, g := range genres {
		if err := validateGenre(g); err != nil {
			return fmt.Errorf("registry: genre %q: %w", key, err)
		}
	}
	if err := validateGenre(defaultGenre); err != nil {
		return fmt.Errorf("registry: default genre: %w", err)
	}

	for _, a := range genreAliases {
		if _, ok := genres[a.Genre]; !ok {
			return fmt.Errorf("registry: alias %q targets unknown genre %q", a.Match, a.Genre)
		}
	}
	for _, mf := range moodFallbacks {
		if len(mf.Genres) == 0 {
			return fmt.Errorf("registry: mood fallback %q has no candidate genres", mf.Keyword)
		}
		for _, key := range mf.Genres {
			if _, ok := genres[key]; !ok {
				return fmt.Errorf("registry: mood fallback %q targets unknown genre %q", mf.Keyword, key)
			}
		}
	}

	for genre, key := range environmentBias {
		if _, ok := genres[genre]; !ok {
			return fmt.Errorf("registry: environment bias names unknown genre %q", genre)
		}
		if _, ok := environmentCategory.phrases[key]; !ok {
			return fmt.Errorf("registry: environment bias for %q targets unknown key %q", genre, key)
		}
	}
	for genre, key := range techniqueBias {
		if _, ok := genres[genre]; !ok {
			return fmt.Errorf("registry: technique bias names unknown genre %q", genre)
		}
		if _, ok := techniqueCategory.phrases[key]; !ok {
			return fmt.Errorf("registry: technique bias for %q targets unknown key %q", genre, key)
		}
	}
	for genre := range genreContexts {
		if _, ok := genres[genre]; !ok {
			return fmt.Errorf("registry: recording context names unknown genre %q", genre)
		}
	}
	return nil
}

func validateGenre(g GenreDefinition) error {
	if len(g.PoolOrder) != len(g.Pools) {
		return fmt.Errorf("pool order lists %d pools, definition has %d", len(g.PoolOrder), len(g.Pools))
	}
	minSum := 0
	inPools := map[string]bool{}
	for _, name := range g.PoolOrder {
		pool, ok := g.Pools[name]
		if !ok {
			return fmt.Errorf("pool order names unknown pool %q", name)
		}
		if pool.PickRange[0] < 0 || pool.PickRange[1] < pool.PickRange[0] {
			return fmt.Errorf("pool %q has invalid pick range %v", name, pool.PickRange)
		}
		if len(pool.Instruments) == 0 {
			return fmt.Errorf("pool %q is empty", name)
		}
		// Gated pools do not count toward the guaranteed minimum.
		if pool.ChanceToInclude == 0 {
			minSum += pool.PickRange[0]
		}
		for _, inst := range pool.Instruments {
			inPools[inst] = true
		}
	}
	if g.MaxTags < minSum {
		return fmt.Errorf("maxTags %d below sum of pool minimums %d", g.MaxTags, minSum)
	}
	for _, group := range g.ExclusionRules {
		if len(group) < 2 {
			return fmt.Errorf("exclusion group %v has fewer than two members", group)
		}
		for _, inst := range group {
			if !inPools[inst] {
				return fmt.Errorf("exclusion rule references %q which is in no pool", inst)
			}
		}
	}
	if g.BPM.Min <= 0 || g.BPM.Max < g.BPM.Min || g.BPM.Typical < g.BPM.Min || g.BPM.Typical > g.BPM.Max {
		return fmt.Errorf("invalid bpm range %+v", g.BPM)
	}
	if len(g.Moods) == 0 {
		return fmt.Errorf("no moods defined")
	}
	return nil
}
