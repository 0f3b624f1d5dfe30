package registry

// SectionType names one of the five fixed song sections.
type SectionType string

const (
	SectionIntro  SectionType = "INTRO"
	SectionVerse  SectionType = "VERSE"
	SectionChorus SectionType = "CHORUS"
	SectionBridge SectionType = "BRIDGE"
	SectionOutro  SectionType = "OUTRO"
)

// SectionSequence returns the fixed section order; there is no branching or
// skipping.
func SectionSequence() []SectionType {
	return []SectionType{SectionIntro, SectionVerse, SectionChorus, SectionBridge, SectionOutro}
}

// SectionTemplate holds the phrasing variants for one section type.
// Templates use {instrument1}, {instrument2}, {mood} and {descriptor}
// placeholders; InstrumentCount says how many instrument slots the
// templates expect.
type SectionTemplate struct {
	Type            SectionType
	Templates       []string
	InstrumentCount int
	Energy          string
}

var sectionTemplates = map[SectionType]SectionTemplate{
	SectionIntro: {
		Type:            SectionIntro,
		InstrumentCount: 1,
		Energy:          "low",
		Templates: []string{
			"{descriptor} {instrument1} setting a {mood} scene",
			"sparse {instrument1} opening with a {mood} feel",
			"{instrument1} fading in, {mood} and {descriptor}",
			"a lone {instrument1} sketching the {mood} theme",
		},
	},
	SectionVerse: {
		Type:            SectionVerse,
		InstrumentCount: 2,
		Energy:          "medium",
		Templates: []string{
			"{instrument1} and {instrument2} settling into a {mood} groove",
			"{descriptor} verse carried by {instrument1} over {instrument2}",
			"{instrument1} trading phrases with {instrument2}, {mood} throughout",
			"steady {instrument2} under a {mood} {instrument1} line",
		},
	},
	SectionChorus: {
		Type:            SectionChorus,
		InstrumentCount: 2,
		Energy:          "high",
		Templates: []string{
			"{descriptor} chorus with {instrument1} and {instrument2} in full swing",
			"{instrument1} lifting the hook while {instrument2} drives, {mood} energy",
			"wide {mood} chorus, {instrument1} stacked over {instrument2}",
			"{instrument1} and {instrument2} hitting together, {descriptor} and {mood}",
		},
	},
	SectionBridge: {
		Type:            SectionBridge,
		InstrumentCount: 2,
		Energy:          "medium",
		Templates: []string{
			"stripped-back bridge, {instrument1} against {instrument2}, {mood} turn",
			"{descriptor} detour led by {instrument1}, {instrument2} answering",
			"{instrument1} reframing the theme over {instrument2}, {mood} shift",
			"tension building as {instrument1} circles {instrument2}, {descriptor}",
		},
	},
	SectionOutro: {
		Type:            SectionOutro,
		InstrumentCount: 1,
		Energy:          "low",
		Templates: []string{
			"{instrument1} winding down to a {mood} close",
			"{descriptor} outro, {instrument1} trailing off",
			"the {mood} theme returning on {instrument1}, then silence",
			"{instrument1} dissolving into a {mood} fade",
		},
	},
}

// GetSectionTemplate looks up the template set for a section type.
func GetSectionTemplate(t SectionType) (SectionTemplate, bool) {
	st, ok := sectionTemplates[t]
	return st, ok
}

// genericMoods backs genres that define no mood list of their own.
var genericMoods = []string{
	"warm", "restless", "dreamy", "urgent", "serene", "melancholic", "playful", "brooding",
}

// GenericMoods returns the fallback mood pool.
func GenericMoods() []string {
	out := make([]string, len(genericMoods))
	copy(out, genericMoods)
	return out
}

// genericDescriptors is the default qualitative-word pool for section
// templates.
var genericDescriptors = []string{
	"shimmering", "understated", "pulsing", "textured", "soulful", "crisp", "hazy", "driving",
}

// dynamicsDescriptors biases the descriptor pool when a section carries a
// dynamics override from contrast or a narrative arc.
var dynamicsDescriptors = map[string][]string{
	"soft":      {"gentle", "delicate", "hushed", "feather-light", "tender"},
	"building":  {"rising", "swelling", "gathering", "escalating", "insistent"},
	"explosive": {"explosive", "thunderous", "bold", "powerful", "towering"},
	"resolving": {"settling", "fading", "unwinding", "dissolving", "calming"},
}

// DescriptorPool returns the descriptor words for a dynamics level, or the
// generic pool when the level is empty or unknown.
func DescriptorPool(dynamics string) []string {
	if pool, ok := dynamicsDescriptors[dynamics]; ok {
		out := make([]string, len(pool))
		copy(out, pool)
		return out
	}
	out := make([]string, len(genericDescriptors))
	copy(out, genericDescriptors)
	return out
}
