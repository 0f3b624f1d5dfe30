package prompt

import (
	"strings"
	"testing"

	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

func testAssembly() Assembly {
	return Assembly{
		GenreName:   "Jazz",
		BPM:         registry.BPMRange{Min: 85, Max: 140, Typical: 110},
		Mood:        "smoky with wistful undertones",
		Instruments: []string{"piano", "upright bass", "brushed drums"},
		StyleTags:   []string{"modal harmony", "heavy syncopation"},
		Recording:   []string{"warm analog tape", "intimate live room"},
		Sections:    "[INTRO] x\n[VERSE] x\n[CHORUS] x\n[BRIDGE] x\n[OUTRO] x",
	}
}

func TestBuildMaxShape(t *testing.T) {
	out := BuildMax(testAssembly())
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("MAX output must be signature + 5 field lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != MaxSignature {
		t.Errorf("first line must be the signature, got %q", lines[0])
	}
	wantPrefix := []string{`genre: "`, `bpm: "`, `instruments: "`, `style tags: "`, `recording: "`}
	for i, prefix := range wantPrefix {
		if !strings.HasPrefix(lines[i+1], prefix) {
			t.Errorf("line %d: expected prefix %q, got %q", i+1, prefix, lines[i+1])
		}
		if !strings.HasSuffix(lines[i+1], `"`) {
			t.Errorf("line %d: value must be quoted, got %q", i+1, lines[i+1])
		}
	}
	if !strings.Contains(out, `bpm: "110 BPM"`) {
		t.Errorf("MAX bpm must render the typical value, got:\n%s", out)
	}
}

func TestBuildMaxInjections(t *testing.T) {
	a := testAssembly()
	a.Progression = "ii-V-I"
	a.VocalStyle = "smooth crooning vocals"
	out := BuildMax(a)

	fields, ok := ParseMax(out)
	if !ok {
		t.Fatal("BuildMax output did not parse as MAX format")
	}
	if !strings.Contains(fields.Instruments, "chord progression ii-V-I") {
		t.Errorf("progression must ride in the instruments value, got %q", fields.Instruments)
	}
	if !strings.HasSuffix(fields.Instruments, "smooth crooning vocals") {
		t.Errorf("vocal style must ride in the instruments value, got %q", fields.Instruments)
	}
	if strings.Contains(fields.StyleTags, "ii-V-I") || strings.Contains(fields.Recording, "vocals") {
		t.Error("injections leaked outside the instruments field")
	}
}

func TestBuildStandardShape(t *testing.T) {
	out := BuildStandard(testAssembly())
	lines := strings.Split(out, "\n")

	wantPrefix := []string{"Genre: ", "BPM: ", "Mood: ", "Instruments: "}
	for i, prefix := range wantPrefix {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d: expected prefix %q, got %q", i, prefix, lines[i])
		}
	}
	if lines[1] != "BPM: 85-140 BPM" {
		t.Errorf("standard BPM must render the min-max range, got %q", lines[1])
	}
	if lines[4] != "" {
		t.Errorf("expected blank line before sections, got %q", lines[4])
	}
	if lines[5] != "[INTRO] x" {
		t.Errorf("sections must follow the headers, got %q", lines[5])
	}
}

func TestIsMaxFormat(t *testing.T) {
	if !IsMaxFormat(BuildMax(testAssembly())) {
		t.Error("BuildMax output must be detected as MAX format")
	}
	if !IsMaxFormat("\n  " + MaxSignature + "\ngenre: \"Pop\"") {
		t.Error("leading whitespace must not defeat detection")
	}
	if IsMaxFormat(BuildStandard(testAssembly())) {
		t.Error("standard output must not be detected as MAX format")
	}
	if IsMaxFormat("genre: \"Pop\"\n" + MaxSignature) {
		t.Error("signature must open the prompt")
	}
}

func TestParseMaxRoundTrip(t *testing.T) {
	a := testAssembly()
	fields, ok := ParseMax(BuildMax(a))
	if !ok {
		t.Fatal("ParseMax rejected BuildMax output")
	}
	if fields.Genre != "Jazz" {
		t.Errorf("genre: got %q", fields.Genre)
	}
	if fields.BPM != "110 BPM" {
		t.Errorf("bpm: got %q", fields.BPM)
	}
	if fields.Instruments != "piano, upright bass, brushed drums" {
		t.Errorf("instruments: got %q", fields.Instruments)
	}
	if fields.StyleTags != "modal harmony, heavy syncopation" {
		t.Errorf("style tags: got %q", fields.StyleTags)
	}
	if fields.Recording != "warm analog tape, intimate live room" {
		t.Errorf("recording: got %q", fields.Recording)
	}
}

func TestParseMaxRejectsStandard(t *testing.T) {
	if _, ok := ParseMax(BuildStandard(testAssembly())); ok {
		t.Error("ParseMax must reject prompts without the signature")
	}
}

func TestParseStandard(t *testing.T) {
	f := ParseStandard(BuildStandard(testAssembly()))
	if f.Genre != "Jazz" {
		t.Errorf("genre: got %q", f.Genre)
	}
	if f.BPM != "85-140 BPM" {
		t.Errorf("bpm: got %q", f.BPM)
	}
	if f.Mood != "smoky with wistful undertones" {
		t.Errorf("mood: got %q", f.Mood)
	}
	if f.Instruments != "piano, upright bass, brushed drums" {
		t.Errorf("instruments: got %q", f.Instruments)
	}

	// Loose text without headers parses to empty fields.
	if f := ParseStandard("just a free-form description"); f != (StandardFields{}) {
		t.Errorf("expected empty fields, got %+v", f)
	}
}

func TestBuildMaxFromFields(t *testing.T) {
	out := BuildMaxFromFields(MaxFields{
		Genre:       "House",
		BPM:         "118-128 BPM",
		Instruments: "four-on-the-floor kick, synth bass",
		StyleTags:   "hypnotic, late-night",
		Recording:   "club-ready master",
	})
	fields, ok := ParseMax(out)
	if !ok {
		t.Fatal("output did not parse as MAX")
	}
	if fields.BPM != "118-128 BPM" {
		t.Errorf("field values must pass through verbatim, got %q", fields.BPM)
	}
}

func TestGenerateTitle(t *testing.T) {
	a := GenerateTitle(rng.New(7))
	b := GenerateTitle(rng.New(7))
	if a != b {
		t.Fatalf("same seed diverged: %q vs %q", a, b)
	}
	if a == "" {
		t.Fatal("empty title")
	}
	if strings.Contains(a, "{") || strings.Contains(a, "}") {
		t.Errorf("unresolved placeholder in title %q", a)
	}

	seen := map[string]bool{}
	for seed := uint64(0); seed < 40; seed++ {
		seen[GenerateTitle(rng.New(seed))] = true
	}
	if len(seen) < 10 {
		t.Errorf("expected varied titles across seeds, got %d distinct", len(seen))
	}
}

func TestLoaderPrompts(t *testing.T) {
	loader := NewPromptLoader()

	enhance, err := loader.GetEnhanceSystemPrompt()
	if err != nil {
		t.Fatalf("GetEnhanceSystemPrompt() returned error: %v", err)
	}
	if !strings.Contains(enhance, "styleTags") || !strings.Contains(enhance, "JSON") {
		t.Error("enhance system prompt missing expected content")
	}

	title, err := loader.GetTitleSystemPrompt()
	if err != nil {
		t.Fatalf("GetTitleSystemPrompt() returned error: %v", err)
	}
	if !strings.Contains(title, "[Instrumental]") {
		t.Error("title system prompt missing the instrumental rule")
	}
	if strings.HasPrefix(title, "\n") || strings.HasSuffix(title, "\n") {
		t.Error("loader must trim surrounding whitespace")
	}
}
