package services

import (
	"strings"
	"testing"

	"github.com/tonecraft-ai/tonecraft-api/internal/compose"
	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
)

func seedPtr(v uint64) *uint64 { return &v }

func generate(t *testing.T, req *StyleRequest) *StyleResult {
	t.Helper()
	res, err := NewStyleService(nil).Generate(req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res
}

func TestGenerateDeterminism(t *testing.T) {
	req := func() *StyleRequest {
		return &StyleRequest{
			Description:      "smoky late night jazz",
			Seed:             seedPtr(42),
			WithTitle:        true,
			TargetGenreCount: 2,
		}
	}

	a := generate(t, req())
	b := generate(t, req())

	if a.Prompt != b.Prompt {
		t.Fatalf("same seed produced different prompts:\n%q\n%q", a.Prompt, b.Prompt)
	}
	if a.Title != b.Title {
		t.Errorf("titles differ: %q vs %q", a.Title, b.Title)
	}
	if a.Genre != b.Genre {
		t.Errorf("genres differ: %q vs %q", a.Genre, b.Genre)
	}
	if strings.Join(a.Instruments, "|") != strings.Join(b.Instruments, "|") {
		t.Errorf("instruments differ: %v vs %v", a.Instruments, b.Instruments)
	}
}

func TestGenerateModeAgreement(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		std := generate(t, &StyleRequest{Description: "deep house vibes", Seed: seedPtr(seed)})
		max := generate(t, &StyleRequest{Description: "deep house vibes", Seed: seedPtr(seed), MaxMode: true})

		if std.Genre != max.Genre {
			t.Fatalf("seed %d: genres diverged across modes: %q vs %q", seed, std.Genre, max.Genre)
		}
		if std.BPM != max.BPM {
			t.Fatalf("seed %d: BPM diverged across modes: %+v vs %+v", seed, std.BPM, max.BPM)
		}
	}
}

func TestGenerateMaxShape(t *testing.T) {
	res := generate(t, &StyleRequest{
		Description: "smoky late night jazz",
		Seed:        seedPtr(7),
		MaxMode:     true,
	})

	if !prompt.IsMaxFormat(res.Prompt) {
		t.Fatalf("MAX mode output missing signature:\n%s", res.Prompt)
	}

	fields, ok := prompt.ParseMax(res.Prompt)
	if !ok {
		t.Fatal("ParseMax rejected MAX-mode output")
	}
	if fields.Genre != strings.Join(res.GenreNames, ", ") {
		t.Errorf("genre field = %q, want %q", fields.Genre, strings.Join(res.GenreNames, ", "))
	}
	if !strings.Contains(fields.Instruments, "chord progression") {
		t.Errorf("instruments field missing progression injection: %q", fields.Instruments)
	}
	if fields.BPM == "" || fields.StyleTags == "" || fields.Recording == "" {
		t.Errorf("incomplete MAX fields: %+v", fields)
	}
}

func TestGenerateStandardShape(t *testing.T) {
	res := generate(t, &StyleRequest{
		Description: "smoky late night jazz",
		Seed:        seedPtr(7),
	})

	if !strings.HasPrefix(res.Prompt, "Genre: ") {
		t.Fatalf("standard output missing genre header:\n%s", res.Prompt)
	}
	for _, marker := range []string{"BPM: ", "Mood: ", "Instruments: ", "[INTRO] ", "[VERSE] ", "[CHORUS] ", "[BRIDGE] ", "[OUTRO] "} {
		if !strings.Contains(res.Prompt, marker) {
			t.Errorf("standard output missing %q:\n%s", marker, res.Prompt)
		}
	}
	if strings.Contains(res.Prompt, "{") {
		t.Errorf("unresolved placeholder in output:\n%s", res.Prompt)
	}
}

func TestGenerateExplicitGenres(t *testing.T) {
	res := generate(t, &StyleRequest{
		Description: "anything at all",
		Seed:        seedPtr(3),
		Genres:      []string{"house", "jazz"},
	})

	if res.Genre != "house" {
		t.Fatalf("primary genre = %q, want house", res.Genre)
	}
	if want := []string{"House", "Jazz"}; strings.Join(res.GenreNames, ",") != strings.Join(want, ",") {
		t.Errorf("GenreNames = %v, want %v", res.GenreNames, want)
	}
	if !strings.HasPrefix(res.Prompt, "Genre: House, Jazz\n") {
		t.Errorf("genre header wrong:\n%s", res.Prompt)
	}
	if res.BPM != registry.GenreOrDefault("house").BPM {
		t.Errorf("BPM should come from the primary genre, got %+v", res.BPM)
	}
}

func TestGenerateExplicitGenreAlias(t *testing.T) {
	res := generate(t, &StyleRequest{
		Description: "anything at all",
		Seed:        seedPtr(3),
		Genres:      []string{"hip hop"},
	})
	if res.Genre != "trap" {
		t.Errorf("alias should resolve to trap, got %q", res.Genre)
	}
}

func TestGenerateUnknownExplicitGenreFallsBack(t *testing.T) {
	res := generate(t, &StyleRequest{
		Description: "deep house vibes",
		Seed:        seedPtr(3),
		Genres:      []string{"zzz not a genre zzz"},
	})
	if res.Genre != "house" {
		t.Errorf("unknown override should fall back to the classified genre, got %q", res.Genre)
	}
}

func TestGenerateEmptyDescriptionUsesDefaultGenre(t *testing.T) {
	res := generate(t, &StyleRequest{Description: "", Seed: seedPtr(11)})
	if res.Genre != registry.DefaultGenre().Key {
		t.Errorf("empty description should use the default genre, got %q", res.Genre)
	}
	if res.Prompt == "" {
		t.Error("empty description still produces a prompt")
	}
}

func TestGenerateTagCapHolds(t *testing.T) {
	for seed := uint64(0); seed < 30; seed++ {
		res := generate(t, &StyleRequest{
			Description: "smoky late night jazz",
			Seed:        seedPtr(seed),
			Genres:      []string{"jazz", "house", "soul"},
		})
		maxTags := registry.GenreOrDefault(res.Genre).MaxTags
		if len(res.Instruments) > maxTags {
			t.Fatalf("seed %d: %d instruments exceeds cap %d: %v", seed, len(res.Instruments), maxTags, res.Instruments)
		}
	}
}

func TestGenerateTargetGenreCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		res := generate(t, &StyleRequest{
			Description:      "smoky late night jazz",
			Seed:             seedPtr(5),
			TargetGenreCount: n,
		})

		line, found := "", false
		for _, l := range strings.Split(res.Prompt, "\n") {
			if strings.HasPrefix(l, "Genre: ") {
				line, found = strings.TrimPrefix(l, "Genre: "), true
				break
			}
		}
		if !found {
			t.Fatalf("n=%d: no genre header:\n%s", n, res.Prompt)
		}
		if got := len(strings.Split(line, ",")); got != n {
			t.Errorf("n=%d: genre field has %d values: %q", n, got, line)
		}
	}
}

func TestGenerateNarrativeArc(t *testing.T) {
	res := generate(t, &StyleRequest{
		Description:  "acoustic folk story",
		Seed:         seedPtr(9),
		NarrativeArc: []string{"isolation", "hope", "triumph"},
	})

	if res.Mood != "isolation to hope to triumph" {
		t.Errorf("arc mood header = %q", res.Mood)
	}
	for _, m := range []string{"isolation", "hope", "triumph"} {
		if !strings.Contains(res.Prompt, m) {
			t.Errorf("arc mood %q missing from prompt:\n%s", m, res.Prompt)
		}
	}
}

func TestGenerateContrastOverride(t *testing.T) {
	res := generate(t, &StyleRequest{
		Description: "acoustic folk story",
		Seed:        seedPtr(9),
		Contrast: []compose.SectionOverride{
			{Section: registry.SectionChorus, Mood: "rage", Dynamics: "explosive"},
		},
	})

	var chorus string
	for _, l := range strings.Split(res.Prompt, "\n") {
		if strings.HasPrefix(l, "[CHORUS] ") {
			chorus = l
			break
		}
	}
	if chorus == "" {
		t.Fatalf("no chorus section:\n%s", res.Prompt)
	}
	if !strings.Contains(chorus, "rage") {
		t.Errorf("contrast mood missing from chorus: %q", chorus)
	}
}

func TestGenerateClockSeedWhenUnset(t *testing.T) {
	res := generate(t, &StyleRequest{Description: "deep house vibes"})
	if res.Seed == 0 {
		t.Error("expected a drawn seed to be reported")
	}
	if res.Prompt == "" {
		t.Error("expected a prompt")
	}
}
