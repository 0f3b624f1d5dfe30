package classify

import (
	"fmt"
	"testing"

	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

func TestGenrePriorityDeterminism(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"smooth jazz night session", "jazz"},
		{"deep house vibes", "house"},
		{"hip hop beats with 808s", "trap"}, // via alias, not keywords
		{"jazz rock fusion", "jazz"},        // priority order, not first-keyword-in-text
		{"warehouse techno all night", "techno"},
		{"garage rock revival", "punk"},
		{"bedroom pop demos", "indie"},
		{"epic cinematic trailer", "orchestral"},
	}
	c := NewClassifier()
	for _, tc := range cases {
		got, ok := c.DetectGenre(tc.text, nil)
		if !ok {
			t.Errorf("%q: no genre detected, want %q", tc.text, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestGenreAliasOnlyAfterDirectMiss(t *testing.T) {
	c := NewClassifier()
	// "trap soul" carries a direct trap keyword; the r&b-ish alias in the
	// text must not preempt it.
	got, ok := c.DetectGenre("trap soul with r&b hooks", nil)
	if !ok || got != "trap" {
		t.Errorf("direct keyword must win over alias, got %q ok=%v", got, ok)
	}
}

func TestGenreNoMatchWithoutRNG(t *testing.T) {
	c := NewClassifier()
	if got, ok := c.DetectGenre("a chill evening by the lake", nil); ok {
		t.Errorf("mood fallback must not run without rng, got %q", got)
	}
	if got, ok := c.DetectGenre("completely unrelated text", rng.New(1)); ok {
		t.Errorf("text without mood keywords must not match, got %q", got)
	}
}

func TestGenreMoodFallback(t *testing.T) {
	c := NewClassifier()
	src := rng.New(42)
	got, ok := c.DetectGenre("a chill evening by the lake", src)
	if !ok {
		t.Fatal("mood fallback should fire with rng present")
	}
	valid := map[string]bool{"lofi": true, "house": true, "rnb": true}
	if !valid[got] {
		t.Errorf("chill fallback produced %q, not a chill candidate", got)
	}

	// Same seed, same pick.
	again, _ := c.DetectGenre("a chill evening by the lake", rng.New(42))
	if again != got {
		t.Errorf("same seed diverged: %q vs %q", got, again)
	}
}

func TestMoodFallbackNotCached(t *testing.T) {
	c := NewClassifier()
	text := "a chill evening by the lake"

	// Warm the cache with the deterministic miss.
	c.DetectGenre(text, nil)

	// A fresh rng must still be consulted; collect picks across seeds and
	// require at least two distinct candidates, which fails if the first
	// random pick had been frozen into the cache.
	seen := map[string]bool{}
	for seed := uint64(0); seed < 20; seed++ {
		got, ok := c.DetectGenre(text, rng.New(seed))
		if !ok {
			t.Fatal("fallback should fire")
		}
		seen[got] = true
	}
	if len(seen) < 2 {
		t.Errorf("mood fallback looks cached: only ever picked %v", seen)
	}
}

func TestClassifyAxes(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("modal jazz with heavy syncopation in 5/4, shifting meter later", rng.New(7))
	if got.Genre != "jazz" {
		t.Errorf("genre: got %q", got.Genre)
	}
	if got.Harmonic != "modal harmony" {
		t.Errorf("harmonic: got %q", got.Harmonic)
	}
	if got.Rhythmic != "heavy syncopation" {
		t.Errorf("rhythmic: got %q", got.Rhythmic)
	}
	if got.TimeSignature != "5/4 time" {
		t.Errorf("time signature: got %q", got.TimeSignature)
	}
	if got.TimeSignatureJourney != "evolving time-signature journey" {
		t.Errorf("journey: got %q", got.TimeSignatureJourney)
	}
	if got.Polyrhythm != "" {
		t.Errorf("polyrhythm should be absent, got %q", got.Polyrhythm)
	}

	tags := got.StyleTags()
	if len(tags) != 4 {
		t.Errorf("expected 4 style tags, got %v", tags)
	}
}

func TestAxisFirstHitWins(t *testing.T) {
	c := NewClassifier()
	// Text matches both swing and four-on-the-floor; swing sits higher in
	// the priority list.
	got := c.Classify("swing feel over four on the floor", nil)
	if got.Rhythmic != "swung rhythmic feel" {
		t.Errorf("priority order violated: got %q", got.Rhythmic)
	}
}

func TestCacheEvictsOldestHalf(t *testing.T) {
	cache := newMemoCache(10)
	for i := 0; i < 10; i++ {
		cache.put(fmt.Sprintf("k%d", i), cacheEntry{value: "v", found: true})
	}
	if cache.size() != 10 {
		t.Fatalf("expected full cache, got %d", cache.size())
	}

	// The 11th insert evicts the oldest five.
	cache.put("k10", cacheEntry{value: "v", found: true})
	if cache.size() != 6 {
		t.Fatalf("expected 6 entries after eviction, got %d", cache.size())
	}
	if _, ok := cache.get("k0"); ok {
		t.Error("oldest entry should be evicted")
	}
	if _, ok := cache.get("k4"); ok {
		t.Error("entry in the oldest half should be evicted")
	}
	if _, ok := cache.get("k5"); !ok {
		t.Error("newer half should survive eviction")
	}
	if _, ok := cache.get("k10"); !ok {
		t.Error("fresh insert should be present")
	}
}

func TestCacheUpdateDoesNotDuplicate(t *testing.T) {
	cache := newMemoCache(10)
	cache.put("k", cacheEntry{value: "a", found: true})
	cache.put("k", cacheEntry{value: "b", found: true})
	if cache.size() != 1 {
		t.Fatalf("update should not grow the cache, got %d", cache.size())
	}
	e, _ := cache.get("k")
	if e.value != "b" {
		t.Errorf("update lost: got %q", e.value)
	}
}

func TestClassifierInstancesAreIsolated(t *testing.T) {
	a := NewClassifier()
	b := NewClassifier()
	a.DetectGenre("smooth jazz", nil)
	if a.cache.size() == 0 {
		t.Fatal("classification should populate the cache")
	}
	if b.cache.size() != 0 {
		t.Error("a second classifier must not share cache state")
	}
}

func TestClassifyDeterminism(t *testing.T) {
	text := "dreamy evening textures"
	first := NewClassifier().Classify(text, rng.New(99))
	second := NewClassifier().Classify(text, rng.New(99))
	if first != second {
		t.Errorf("same seed diverged: %+v vs %+v", first, second)
	}
}
