// Package classify resolves a genre and independent style axes (harmonic,
// rhythmic, combination, polyrhythm, time signature, time-signature
// journey) from free text. Matching is deliberately simple: lowercase
// substring checks against fixed priority lists, so results are stable
// across releases. No match is never an error; absent fields stay empty.
package classify

import (
	"strings"

	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

const cacheCapacity = 100

// Classification is the result of one Classify call. Genre holds a registry
// genre key; the axis fields hold display phrases ready for prompt
// injection. Empty string means the axis did not match.
type Classification struct {
	Genre                string
	Harmonic             string
	Rhythmic             string
	Combination          string
	Polyrhythm           string
	TimeSignature        string
	TimeSignatureJourney string
}

// Classifier runs the axis scans with a per-instance memo cache. One
// instance can serve concurrent requests; the cache is mutex-guarded.
type Classifier struct {
	cache *memoCache
}

// NewClassifier returns a classifier with an empty cache.
func NewClassifier() *Classifier {
	return &Classifier{cache: newMemoCache(cacheCapacity)}
}

// Classify resolves every axis independently. src is only consumed by the
// genre mood-fallback stage; pass nil to disable that stage.
func (c *Classifier) Classify(text string, src rng.Source) Classification {
	norm := normalize(text)
	out := Classification{}
	if genre, ok := c.genre(norm, src); ok {
		out.Genre = genre
	}
	for _, axis := range registry.StyleAxes() {
		phrase, ok := c.axis(axis, norm)
		if !ok {
			continue
		}
		switch axis.Name {
		case registry.AxisHarmonic:
			out.Harmonic = phrase
		case registry.AxisRhythmic:
			out.Rhythmic = phrase
		case registry.AxisCombination:
			out.Combination = phrase
		case registry.AxisPolyrhythm:
			out.Polyrhythm = phrase
		case registry.AxisTimeSignature:
			out.TimeSignature = phrase
		case registry.AxisTSJourney:
			out.TimeSignatureJourney = phrase
		}
	}
	return out
}

// DetectGenre resolves only the genre axis. The stages run in fixed order:
// direct keyword match against the priority list, then the alias table,
// then a random pick from the mood-fallback candidates when src is non-nil.
// Only the deterministic stages are memoized; a cached miss still re-rolls
// the mood fallback on every call.
func (c *Classifier) DetectGenre(text string, src rng.Source) (string, bool) {
	return c.genre(normalize(text), src)
}

func (c *Classifier) genre(norm string, src rng.Source) (string, bool) {
	key := "genre\x00" + norm
	entry, cached := c.cache.get(key)
	if !cached {
		entry = detectGenreDirect(norm)
		c.cache.put(key, entry)
	}
	if entry.found {
		return entry.value, true
	}
	if src == nil {
		return "", false
	}
	for _, mf := range registry.MoodFallbacks() {
		if strings.Contains(norm, mf.Keyword) {
			return mf.Genres[rng.Index(src, len(mf.Genres))], true
		}
	}
	return "", false
}

// detectGenreDirect runs the deterministic stages: priority-ordered keyword
// scan, then aliases.
func detectGenreDirect(norm string) cacheEntry {
	for _, key := range registry.GenreKeys() {
		g, ok := registry.GetGenre(key)
		if !ok {
			continue
		}
		if strings.Contains(norm, strings.ToLower(g.Name)) {
			return cacheEntry{value: key, found: true}
		}
		for _, kw := range g.Keywords {
			if strings.Contains(norm, kw) {
				return cacheEntry{value: key, found: true}
			}
		}
	}
	for _, alias := range registry.Aliases() {
		if strings.Contains(norm, alias.Match) {
			return cacheEntry{value: alias.Genre, found: true}
		}
	}
	return cacheEntry{}
}

func (c *Classifier) axis(axis registry.StyleAxis, norm string) (string, bool) {
	key := axis.Name + "\x00" + norm
	if entry, ok := c.cache.get(key); ok {
		return entry.value, entry.found
	}
	entry := cacheEntry{}
	for _, e := range axis.Entries {
		for _, kw := range e.Keywords {
			if strings.Contains(norm, kw) {
				entry = cacheEntry{value: e.Phrase, found: true}
				break
			}
		}
		if entry.found {
			break
		}
	}
	c.cache.put(key, entry)
	return entry.value, entry.found
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// StyleTags flattens the non-empty axis phrases for prompt assembly, in a
// fixed order.
func (cl Classification) StyleTags() []string {
	var tags []string
	for _, v := range []string{cl.Harmonic, cl.Rhythmic, cl.Combination, cl.Polyrhythm, cl.TimeSignature, cl.TimeSignatureJourney} {
		if v != "" {
			tags = append(tags, v)
		}
	}
	return tags
}
