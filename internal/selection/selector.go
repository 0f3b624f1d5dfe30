// Package selection implements the constrained random selection the engine
// is built on: draw N items from ordered pools without replacement,
// honoring exclusion rules, per-pool inclusion probability, and a global
// cap. The same primitive drives instrument picks, recording descriptors,
// and section instrumentation.
package selection

import (
	"fmt"
	"slices"

	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

// FromPools draws from pools in the given order until each pool satisfied
// its pick range or maxCount was reached. Items never repeat; a draw that
// conflicts with an exclusion group already represented is discarded and
// redrawn from the remaining candidates, so the retry loop is bounded by
// pool size and degrades to fewer items instead of failing.
func FromPools(pools map[string]registry.Pool, order []string, maxCount int, rules [][]string, src rng.Source) []string {
	return fillFromPools(nil, pools, order, maxCount, rules, src)
}

func fillFromPools(selected []string, pools map[string]registry.Pool, order []string, maxCount int, rules [][]string, src rng.Source) []string {
	seen := make(map[string]bool, len(selected))
	for _, s := range selected {
		seen[s] = true
	}
	for _, name := range order {
		if len(selected) >= maxCount {
			break
		}
		pool, ok := pools[name]
		if !ok {
			continue
		}
		// The inclusion gate consumes one draw even when it fails, keeping
		// the stream position independent of the outcome's use.
		if pool.ChanceToInclude > 0 && src() >= pool.ChanceToInclude {
			continue
		}
		want := rng.IntBetween(src, pool.PickRange[0], pool.PickRange[1])
		if want <= 0 {
			continue
		}
		candidates := slices.Clone(pool.Instruments)
		drawn := 0
		for drawn < want && len(candidates) > 0 && len(selected) < maxCount {
			i := rng.Index(src, len(candidates))
			item := candidates[i]
			candidates = slices.Delete(candidates, i, i+1)
			if seen[item] || conflicts(item, selected, rules) {
				continue
			}
			selected = append(selected, item)
			seen[item] = true
			drawn++
		}
	}
	return selected
}

// conflicts reports whether item shares an exclusion group with anything
// already selected.
func conflicts(item string, selected []string, rules [][]string) bool {
	for _, group := range rules {
		if !slices.Contains(group, item) {
			continue
		}
		for _, other := range group {
			if other != item && slices.Contains(selected, other) {
				return true
			}
		}
	}
	return false
}

// InstrumentOptions tunes an Instruments call. Explicit instruments are
// trusted and placed first; ExtraPools (e.g. crossover pools from secondary
// genres) are drawn after the genre's own pools.
type InstrumentOptions struct {
	MaxTags    int
	Explicit   []string
	ExtraPools []registry.Pool
}

// Instruments selects the instrument tag set for a genre: the caller's
// explicit picks, the genre pools, any extra pools, then the bounded
// post-pass injections (multi-genre layer, foundational anchor, orchestral
// color). The result is capped at the genre's MaxTags unless overridden.
func Instruments(genre registry.GenreDefinition, src rng.Source, opts InstrumentOptions) []string {
	maxTags := opts.MaxTags
	if maxTags <= 0 {
		maxTags = genre.MaxTags
	}

	var selected []string
	for _, inst := range opts.Explicit {
		if len(selected) >= maxTags {
			break
		}
		if !slices.Contains(selected, inst) {
			selected = append(selected, inst)
		}
	}

	selected = fillFromPools(selected, genre.Pools, genre.PoolOrder, maxTags, genre.ExclusionRules, src)

	if len(opts.ExtraPools) > 0 {
		extra := make(map[string]registry.Pool, len(opts.ExtraPools))
		order := make([]string, 0, len(opts.ExtraPools))
		for i, p := range opts.ExtraPools {
			name := fmt.Sprintf("extra%d", i)
			extra[name] = p
			order = append(order, name)
		}
		selected = fillFromPools(selected, extra, order, maxTags, genre.ExclusionRules, src)
	}

	selected = injectIfAbsent(selected, registry.MultiGenreInstruments(), 2, maxTags, genre.ExclusionRules, src)
	selected = injectIfAbsent(selected, registry.FoundationalInstruments(), 1, maxTags, genre.ExclusionRules, src)
	if registry.IsOrchestralGenre(genre.Key) || anyOrchestral(opts.Explicit) {
		selected = injectIfAbsent(selected, registry.OrchestralColorInstruments(), 1, maxTags, genre.ExclusionRules, src)
	}
	return selected
}

// injectIfAbsent adds up to limit items from candidates when none of them
// are present yet. Idempotent: a selection already carrying one of the
// candidates is returned unchanged.
func injectIfAbsent(selected []string, candidates []string, limit, maxTags int, rules [][]string, src rng.Source) []string {
	for _, s := range selected {
		if slices.Contains(candidates, s) {
			return selected
		}
	}
	remaining := slices.Clone(candidates)
	for limit > 0 && len(remaining) > 0 && len(selected) < maxTags {
		i := rng.Index(src, len(remaining))
		item := remaining[i]
		remaining = slices.Delete(remaining, i, i+1)
		if slices.Contains(selected, item) || conflicts(item, selected, rules) {
			continue
		}
		selected = append(selected, item)
		limit--
	}
	return selected
}

func anyOrchestral(instruments []string) bool {
	for _, inst := range instruments {
		if registry.IsOrchestralInstrument(inst) {
			return true
		}
	}
	return false
}
