package registry

// AxisEntry is one detectable value on a style axis: the stable key, the
// keywords that trigger it, and the phrase injected into prompts when it is
// detected.
type AxisEntry struct {
	Key      string
	Keywords []string
	Phrase   string
}

// StyleAxis is an independent detection axis. Entries are listed in
// priority order; the classifier scans them top to bottom and the first
// keyword hit wins. Every axis shares this one shape so the scan logic
// exists exactly once.
type StyleAxis struct {
	Name    string
	Entries []AxisEntry
}

// Axis names, used as memoization-key prefixes and result field tags.
const (
	AxisHarmonic      = "harmonic"
	AxisRhythmic      = "rhythmic"
	AxisCombination   = "combination"
	AxisPolyrhythm    = "polyrhythm"
	AxisTimeSignature = "time_signature"
	AxisTSJourney     = "time_signature_journey"
)

var styleAxes = []StyleAxis{
	{
		Name: AxisHarmonic,
		Entries: []AxisEntry{
			{Key: "modal", Keywords: []string{"modal", "dorian", "lydian", "mixolydian", "phrygian"}, Phrase: "modal harmony"},
			{Key: "extended", Keywords: []string{"extended chords", "ninth chords", "jazz chords", "lush harmony"}, Phrase: "extended jazz harmony"},
			{Key: "chromatic", Keywords: []string{"chromatic", "dissonan", "atonal"}, Phrase: "chromatic harmonic movement"},
			{Key: "bluesy", Keywords: []string{"blue notes", "dominant seventh", "bent notes"}, Phrase: "blues-inflected harmony"},
			{Key: "diatonic", Keywords: []string{"diatonic", "simple chords", "three chords"}, Phrase: "straightforward diatonic harmony"},
		},
	},
	{
		Name: AxisRhythmic,
		Entries: []AxisEntry{
			{Key: "swing", Keywords: []string{"swing", "swung", "shuffle"}, Phrase: "swung rhythmic feel"},
			{Key: "syncopated", Keywords: []string{"syncopat", "offbeat", "off-beat"}, Phrase: "heavy syncopation"},
			{Key: "halftime", Keywords: []string{"halftime", "half-time", "half time"}, Phrase: "halftime groove"},
			{Key: "four_floor", Keywords: []string{"four on the floor", "four-on-the-floor", "steady kick"}, Phrase: "four-on-the-floor pulse"},
			{Key: "breakbeat", Keywords: []string{"breakbeat", "broken beat", "chopped drums"}, Phrase: "broken-beat drum work"},
			{Key: "straight", Keywords: []string{"straight eighth", "straight beat", "metronomic"}, Phrase: "straight driving rhythm"},
		},
	},
	{
		Name: AxisCombination,
		Entries: []AxisEntry{
			{Key: "latin", Keywords: []string{"latin", "bossa", "afro-cuban", "clave", "salsa"}, Phrase: "latin rhythm-section interplay"},
			{Key: "afrobeat", Keywords: []string{"afrobeat", "highlife", "afro groove"}, Phrase: "afrobeat ensemble groove"},
			{Key: "fusion", Keywords: []string{"fusion", "crossover", "genre-blending"}, Phrase: "fusion-style genre blending"},
			{Key: "orchestral_hybrid", Keywords: []string{"hybrid orchestral", "orchestral electronic", "epic hybrid"}, Phrase: "hybrid orchestral-electronic palette"},
		},
	},
	{
		Name: AxisPolyrhythm,
		Entries: []AxisEntry{
			{Key: "three_two", Keywords: []string{"hemiola", "3 against 2", "three against two", "3:2"}, Phrase: "three-against-two polyrhythm"},
			{Key: "four_three", Keywords: []string{"4 against 3", "four against three", "4:3"}, Phrase: "four-against-three polyrhythm"},
			{Key: "cross", Keywords: []string{"polyrhythm", "cross-rhythm", "cross rhythm", "interlocking rhythms"}, Phrase: "interlocking cross-rhythms"},
		},
	},
	{
		Name: AxisTimeSignature,
		Entries: []AxisEntry{
			{Key: "waltz", Keywords: []string{"3/4", "waltz"}, Phrase: "3/4 waltz time"},
			{Key: "six_eight", Keywords: []string{"6/8", "compound meter"}, Phrase: "6/8 compound time"},
			{Key: "five_four", Keywords: []string{"5/4", "five four"}, Phrase: "5/4 time"},
			{Key: "seven_eight", Keywords: []string{"7/8", "seven eight"}, Phrase: "7/8 time"},
			{Key: "common", Keywords: []string{"4/4", "common time"}, Phrase: "4/4 common time"},
		},
	},
	{
		Name: AxisTSJourney,
		Entries: []AxisEntry{
			{Key: "common_to_odd", Keywords: []string{"4/4 to 7/8", "shifting into odd meter"}, Phrase: "journey from 4/4 into 7/8"},
			{Key: "waltz_to_common", Keywords: []string{"3/4 to 4/4", "waltz into common time"}, Phrase: "journey from 3/4 into 4/4"},
			{Key: "shifting", Keywords: []string{"shifting meter", "changing time signature", "meter changes", "odd-meter journey"}, Phrase: "evolving time-signature journey"},
		},
	},
}

// StyleAxes returns all detection axes in a stable order.
func StyleAxes() []StyleAxis {
	out := make([]StyleAxis, len(styleAxes))
	copy(out, styleAxes)
	return out
}
