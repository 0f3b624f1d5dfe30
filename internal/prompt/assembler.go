// Package prompt renders the final generation text. Two encodings exist:
// the MAX block (signature line plus five quoted key: "value" lines) and the
// standard layout (header lines plus the composed section blocks). The
// package also post-processes genre counts and produces fallback titles from
// the embedded word pools.
package prompt

import (
	"fmt"
	"strings"

	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
)

// MaxSignature opens every MAX-mode prompt. Detection and parsing key off
// this exact line.
const MaxSignature = "### MAX STYLE ###"

// Assembly carries the resolved classifier/selector/composer outputs that
// the encoders format. Sections is only consumed by the standard encoding;
// Progression and VocalStyle only by MAX.
type Assembly struct {
	GenreName   string
	BPM         registry.BPMRange
	Mood        string
	Instruments []string
	StyleTags   []string
	Recording   []string
	Sections    string
	Progression string
	VocalStyle  string
}

// BuildMax renders the MAX encoding: the signature line followed by exactly
// five key: "value" lines in fixed order. A chord progression and vocal
// style, when present, ride inside the instruments value.
func BuildMax(a Assembly) string {
	instruments := strings.Join(a.Instruments, ", ")
	if a.Progression != "" {
		instruments += ", chord progression " + a.Progression
	}
	if a.VocalStyle != "" {
		instruments += ", " + a.VocalStyle
	}

	return BuildMaxFromFields(MaxFields{
		Genre:       a.GenreName,
		BPM:         fmt.Sprintf("%d BPM", a.BPM.Typical),
		Instruments: instruments,
		StyleTags:   strings.Join(a.StyleTags, ", "),
		Recording:   strings.Join(a.Recording, ", "),
	})
}

// BuildMaxFromFields renders the MAX encoding from already-formatted field
// values. Used by the conversion path, which carries string fields parsed
// out of a foreign prompt rather than structured engine output.
func BuildMaxFromFields(f MaxFields) string {
	lines := []string{
		MaxSignature,
		fmt.Sprintf("genre: %q", f.Genre),
		fmt.Sprintf("bpm: %q", f.BPM),
		fmt.Sprintf("instruments: %q", f.Instruments),
		fmt.Sprintf("style tags: %q", f.StyleTags),
		fmt.Sprintf("recording: %q", f.Recording),
	}
	return strings.Join(lines, "\n")
}

// BuildStandard renders the standard encoding: Genre/BPM/Mood/Instruments
// header lines, a blank line, then the five bracketed section blocks.
func BuildStandard(a Assembly) string {
	var b strings.Builder
	b.WriteString("Genre: " + a.GenreName + "\n")
	b.WriteString(fmt.Sprintf("BPM: %d-%d BPM\n", a.BPM.Min, a.BPM.Max))
	b.WriteString("Mood: " + a.Mood + "\n")
	b.WriteString("Instruments: " + strings.Join(a.Instruments, ", ") + "\n\n")
	b.WriteString(a.Sections)
	return b.String()
}

// IsMaxFormat reports whether text already carries the MAX signature, so
// callers can skip the conversion path.
func IsMaxFormat(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), MaxSignature)
}

// MaxFields holds the five values parsed back out of a MAX-mode prompt.
type MaxFields struct {
	Genre       string
	BPM         string
	Instruments string
	StyleTags   string
	Recording   string
}

// ParseMax extracts the quoted field values from a MAX-mode prompt. It
// returns false when the signature line is missing; fields absent from the
// text stay empty.
func ParseMax(text string) (MaxFields, bool) {
	if !IsMaxFormat(text) {
		return MaxFields{}, false
	}
	var f MaxFields
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := splitField(line)
		if !ok {
			continue
		}
		switch key {
		case "genre":
			f.Genre = value
		case "bpm":
			f.BPM = value
		case "instruments":
			f.Instruments = value
		case "style tags":
			f.StyleTags = value
		case "recording":
			f.Recording = value
		}
	}
	return f, true
}

// StandardFields holds the header values parsed out of a standard-mode
// prompt. Missing headers stay empty.
type StandardFields struct {
	Genre       string
	BPM         string
	Mood        string
	Instruments string
}

// ParseStandard extracts the header lines from a standard-mode prompt (or
// any loosely similar text). Section blocks and unknown lines are ignored.
func ParseStandard(text string) StandardFields {
	var f StandardFields
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := splitField(line)
		if !ok {
			continue
		}
		switch key {
		case "genre":
			f.Genre = value
		case "bpm":
			f.BPM = value
		case "mood":
			f.Mood = value
		case "instruments":
			f.Instruments = value
		}
	}
	return f
}

// splitField splits one `key: value` line, lowercasing the key and
// stripping surrounding quotes from the value.
func splitField(line string) (key, value string, ok bool) {
	i := strings.Index(line, ":")
	if i < 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:i]))
	value = strings.TrimSpace(line[i+1:])
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}
