package prompt

import (
	"github.com/tonecraft-ai/tonecraft-api/internal/compose"
	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

// GenerateTitle produces a short track title from the embedded word pools:
// one pattern draw, then one draw per pool. Every pool is drawn even when
// the pattern skips it, keeping the draw count stable across patterns.
func GenerateTitle(src rng.Source) string {
	pools := registry.TitleWordPools()
	pattern := pools.Patterns[rng.Index(src, len(pools.Patterns))]
	vals := map[string]string{
		"adjective": pools.Adjectives[rng.Index(src, len(pools.Adjectives))],
		"noun":      pools.Nouns[rng.Index(src, len(pools.Nouns))],
		"image":     pools.Images[rng.Index(src, len(pools.Images))],
	}
	return compose.Interpolate(pattern, vals)
}
