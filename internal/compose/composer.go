// Package compose builds the five bracketed section blocks of a
// standard-mode prompt: INTRO, VERSE, CHORUS, BRIDGE, OUTRO in fixed order.
// Across sections it rotates instrumentation through a rolling
// recently-used window and applies per-section mood/dynamics overrides from
// an explicit contrast list or a narrative arc.
package compose

import (
	"fmt"
	"strings"

	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
	"github.com/tonecraft-ai/tonecraft-api/internal/selection"
)

// recentWindow caps how many previously used instruments are filtered out
// of the next section's candidates.
const recentWindow = 4

// SectionOverride is one explicit contrast entry: force a section type's
// mood and/or dynamics.
type SectionOverride struct {
	Section  registry.SectionType
	Mood     string
	Dynamics string
}

// Override is the resolved per-section override after merging contrast and
// narrative arc.
type Override struct {
	Mood     string
	Dynamics string
}

// Arc position defaults, applied when a narrative arc supplies the mood but
// no explicit dynamics exist for the section.
const (
	arcStartDynamics  = "soft"
	arcMiddleDynamics = "building"
	arcEndDynamics    = "resolving"
)

// BuildOverrides merges an explicit contrast list with a narrative arc.
// Contrast entries win per section type; the arc only fills sections that
// have no explicit entry. The arc maps by position: first emotion onto
// INTRO and VERSE, middle emotion onto CHORUS and BRIDGE, last onto OUTRO.
func BuildOverrides(contrast []SectionOverride, arc []string) map[registry.SectionType]Override {
	overrides := make(map[registry.SectionType]Override)

	if len(arc) > 0 {
		start := arc[0]
		middle := arc[len(arc)/2]
		end := arc[len(arc)-1]
		overrides[registry.SectionIntro] = Override{Mood: start, Dynamics: arcStartDynamics}
		overrides[registry.SectionVerse] = Override{Mood: start, Dynamics: arcStartDynamics}
		overrides[registry.SectionChorus] = Override{Mood: middle, Dynamics: arcMiddleDynamics}
		overrides[registry.SectionBridge] = Override{Mood: middle, Dynamics: arcMiddleDynamics}
		overrides[registry.SectionOutro] = Override{Mood: end, Dynamics: arcEndDynamics}
	}

	for _, c := range contrast {
		overrides[c.Section] = Override{Mood: c.Mood, Dynamics: c.Dynamics}
	}
	return overrides
}

// Result carries the composed section text and the flat list of
// instruments used across sections, in order of use.
type Result struct {
	Text        string
	Instruments []string
}

// Compose renders the five sections for a genre. Every random decision
// flows through src, so a fixed seed reproduces the text exactly.
func Compose(genre registry.GenreDefinition, overrides map[registry.SectionType]Override, src rng.Source) Result {
	var blocks []string
	var used []string
	var window []string

	for _, typ := range registry.SectionSequence() {
		st, ok := registry.GetSectionTemplate(typ)
		if !ok {
			panic(fmt.Sprintf("compose: no template set for section %s", typ))
		}
		tmpl := st.Templates[rng.Index(src, len(st.Templates))]

		insts := sectionInstruments(genre, st.InstrumentCount, window, src)
		used = append(used, insts...)
		window = append(window, insts...)
		if len(window) > recentWindow {
			window = window[len(window)-recentWindow:]
		}

		mood := sectionMood(genre, overrides[typ], src)
		descriptor := sectionDescriptor(overrides[typ], src)

		vals := map[string]string{
			"instrument1": insts[0],
			"mood":        mood,
			"descriptor":  descriptor,
		}
		if st.InstrumentCount > 1 {
			vals["instrument2"] = insts[1]
		}
		blocks = append(blocks, fmt.Sprintf("[%s] %s", typ, Interpolate(tmpl, vals)))
	}

	return Result{Text: strings.Join(blocks, "\n"), Instruments: used}
}

// sectionInstruments draws count instruments from the genre's flattened
// pools, filtering out the recently used window first. When the filter
// starves the draw below count, the unfiltered pool is used instead. The
// exclusion rules still apply; if they leave the draw short, earlier picks
// are repeated rather than leaving a template slot empty.
func sectionInstruments(genre registry.GenreDefinition, count int, window []string, src rng.Source) []string {
	all := flattenPools(genre)
	candidates := excluding(all, window)
	if len(candidates) < count {
		candidates = all
	}

	pool := map[string]registry.Pool{
		"section": {PickRange: [2]int{count, count}, Instruments: candidates},
	}
	insts := selection.FromPools(pool, []string{"section"}, count, genre.ExclusionRules, src)

	for len(insts) < count {
		if len(insts) == 0 {
			// Reachable only with an empty genre pool set, which the
			// registry forbids.
			panic("compose: genre " + genre.Key + " has no instruments to draw from")
		}
		insts = append(insts, insts[0])
	}
	return insts
}

func flattenPools(genre registry.GenreDefinition) []string {
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

func excluding(items, drop []string) []string {
	if len(drop) == 0 {
		return items
	}
	dropSet := make(map[string]bool, len(drop))
	for _, d := range drop {
		dropSet[d] = true
	}
	var out []string
	for _, item := range items {
		if !dropSet[item] {
			out = append(out, item)
		}
	}
	return out
}

// sectionMood resolves the section's mood phrase. An override mood becomes
// the primary and one supplementary mood is drawn from the genre pool;
// otherwise two draws decide both. Identical picks collapse to the primary
// alone.
func sectionMood(genre registry.GenreDefinition, ov Override, src rng.Source) string {
	moods := genre.Moods
	if len(moods) == 0 {
		moods = registry.GenericMoods()
	}
	primary := ov.Mood
	if primary == "" {
		primary = moods[rng.Index(src, len(moods))]
	}
	supplementary := moods[rng.Index(src, len(moods))]
	if supplementary == primary {
		return primary
	}
	return primary + " with " + supplementary + " undertones"
}

func sectionDescriptor(ov Override, src rng.Source) string {
	pool := registry.DescriptorPool(ov.Dynamics)
	return pool[rng.Index(src, len(pool))]
}
