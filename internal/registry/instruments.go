package registry

// multiGenreInstruments work in nearly any style; up to two are layered in
// when a selection ends up with none of them.
var multiGenreInstruments = []string{
	"piano",
	"acoustic guitar",
	"electric guitar",
	"strings",
	"synth pad",
}

// foundationalInstruments anchor the low end / pulse; at most one is added
// when a selection carries none.
var foundationalInstruments = []string{
	"drums",
	"bass guitar",
	"upright bass",
	"sub bass",
	"drum machine",
}

// orchestralColorInstruments are only injected for orchestral-flavored
// genres, or when the caller explicitly asked for one of them.
var orchestralColorInstruments = []string{
	"french horn",
	"harp",
	"timpani",
	"celesta",
	"oboe",
	"glockenspiel",
}

var orchestralGenres = map[string]bool{
	"orchestral": true,
	"classical":  true,
}

// MultiGenreInstruments returns the cross-genre layer candidates.
func MultiGenreInstruments() []string {
	out := make([]string, len(multiGenreInstruments))
	copy(out, multiGenreInstruments)
	return out
}

// FoundationalInstruments returns the rhythm/low-end anchor candidates.
func FoundationalInstruments() []string {
	out := make([]string, len(foundationalInstruments))
	copy(out, foundationalInstruments)
	return out
}

// OrchestralColorInstruments returns the orchestral color candidates.
func OrchestralColorInstruments() []string {
	out := make([]string, len(orchestralColorInstruments))
	copy(out, orchestralColorInstruments)
	return out
}

// IsOrchestralGenre reports whether the genre key gets orchestral color.
func IsOrchestralGenre(key string) bool {
	return orchestralGenres[key]
}

// IsOrchestralInstrument reports whether name is one of the orchestral
// color instruments.
func IsOrchestralInstrument(name string) bool {
	for _, inst := range orchestralColorInstruments {
		if inst == name {
			return true
		}
	}
	return false
}
