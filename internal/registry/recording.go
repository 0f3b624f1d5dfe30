package registry

// DescriptorCategory is one of the four recording/production axes. Keys are
// drawn at most once per category, so contradictory descriptors (analog vs
// digital) cannot co-occur by construction. Keys() preserves declaration
// order so random picks stay seed-stable.
type DescriptorCategory struct {
	Name    string
	keys    []string
	phrases map[string][]string
}

// Keys returns the category's keys in declaration order.
func (c DescriptorCategory) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Phrases returns the interchangeable descriptor phrases for a key.
func (c DescriptorCategory) Phrases(key string) ([]string, bool) {
	p, ok := c.phrases[key]
	return p, ok
}

var qualityCategory = DescriptorCategory{
	Name: "quality",
	keys: []string{"pristine", "warm", "raw", "polished", "gritty"},
	phrases: map[string][]string{
		"pristine": {"pristine studio clarity", "crystal-clear mix", "hi-fi detail"},
		"warm":     {"warm analog tone", "rounded warm mix", "rich warm low end"},
		"raw":      {"raw unpolished takes", "rough-edged recording", "first-take energy"},
		"polished": {"radio-polished production", "tight modern polish", "clean commercial sheen"},
		"gritty":   {"gritty saturated sound", "dirt-under-the-nails grit", "overdriven texture"},
	},
}

var environmentCategory = DescriptorCategory{
	Name: "environment",
	keys: []string{"studio", "live", "home", "rehearsal", "club"},
	phrases: map[string][]string{
		"studio":    {"treated studio room", "dead-quiet iso booth", "classic studio live room"},
		"live":      {"live concert hall ambience", "on-stage energy", "audience room tone"},
		"home":      {"bedroom recording intimacy", "home studio closeness", "apartment-quiet takes"},
		"rehearsal": {"garage rehearsal room", "basement practice space", "storage-unit jam room"},
		"club":      {"club PA weight", "late-night dancefloor air", "DJ-booth perspective"},
	},
}

var techniqueCategory = DescriptorCategory{
	Name: "technique",
	keys: []string{"analog", "digital", "hybrid"},
	phrases: map[string][]string{
		"analog":  {"tracked to 2-inch tape", "analog console workflow", "all-hardware signal chain"},
		"digital": {"precision digital production", "in-the-box mixing", "sample-accurate editing"},
		"hybrid":  {"hybrid analog-digital chain", "tape-warmed digital mix", "outboard color with digital recall"},
	},
}

var characterCategory = DescriptorCategory{
	Name: "character",
	keys: []string{"vintage", "modern", "intimate", "spacious", "saturated"},
	phrases: map[string][]string{
		"vintage":   {"vintage microphone character", "60s tracking aesthetics", "period-correct tone"},
		"modern":    {"contemporary punch", "modern loudness and depth", "current-era sheen"},
		"intimate":  {"close-mic intimacy", "whisper-distance vocals", "small-room closeness"},
		"spacious":  {"wide spacious image", "cathedral-scale reverb", "panoramic stereo field"},
		"saturated": {"tape-saturated glue", "harmonically saturated bus", "driven preamp color"},
	},
}

// RecordingQuality returns the quality descriptor category, always drawn.
func RecordingQuality() DescriptorCategory { return qualityCategory }

// RecordingEnvironment returns the environment descriptor category.
func RecordingEnvironment() DescriptorCategory { return environmentCategory }

// RecordingTechnique returns the technique descriptor category.
func RecordingTechnique() DescriptorCategory { return techniqueCategory }

// RecordingCharacter returns the character descriptor category.
func RecordingCharacter() DescriptorCategory { return characterCategory }

// environmentBias steers the environment key for genres with a strong
// recording tradition; everything else picks uniformly.
var environmentBias = map[string]string{
	"jazz":       "live",
	"blues":      "live",
	"classical":  "live",
	"orchestral": "live",
	"soul":       "live",
	"lofi":       "home",
	"indie":      "home",
	"punk":       "rehearsal",
}

// techniqueBias steers the technique key: electronic family to digital,
// vintage/acoustic family to analog, modern band genres to hybrid.
var techniqueBias = map[string]string{
	"house":     "digital",
	"techno":    "digital",
	"trance":    "digital",
	"dnb":       "digital",
	"dubstep":   "digital",
	"trap":      "digital",
	"pop":       "hybrid",
	"rock":      "hybrid",
	"metal":     "hybrid",
	"rnb":       "hybrid",
	"jazz":      "analog",
	"blues":     "analog",
	"soul":      "analog",
	"funk":      "analog",
	"folk":      "analog",
	"country":   "analog",
	"reggae":    "analog",
	"synthwave": "analog",
}

// EnvironmentBias returns the biased environment key for a genre, if any.
func EnvironmentBias(genreKey string) (string, bool) {
	k, ok := environmentBias[genreKey]
	return k, ok
}

// TechniqueBias returns the biased technique key for a genre, if any.
func TechniqueBias(genreKey string) (string, bool) {
	k, ok := techniqueBias[genreKey]
	return k, ok
}

// genreContexts holds curated single-phrase recording contexts for genres
// where the setting is part of the idiom.
var genreContexts = map[string][]string{
	"jazz":       {"recorded live at a smoky jazz club", "late-night session in a vintage studio", "intimate trio date, one room, no overdubs"},
	"blues":      {"cut live on the juke-joint floor", "single ribbon mic in a shotgun shack", "roadhouse stage after midnight"},
	"classical":  {"captured in a resonant concert hall", "chamber session in a stone chapel", "scoring stage with a full ensemble"},
	"orchestral": {"scoring stage with 80-piece orchestra", "cathedral session with distant mics", "concert hall with lush natural reverb"},
	"lofi":       {"taped in a cluttered bedroom on cassette", "rainy-window home session", "four-track recording on a lazy afternoon"},
	"house":      {"mixed for a sweaty basement club", "DJ booth perspective at peak hour", "warehouse party at 3am"},
	"techno":     {"tracked for an industrial warehouse rig", "concrete room, strobes and smoke", "after-hours bunker session"},
	"folk":       {"gathered around one mic in a cabin", "front-porch recording at dusk", "barn session with the doors open"},
	"punk":       {"blasted out in a garage rehearsal", "basement show, blown PA", "one-take demo in a storage unit"},
	"reggae":     {"laid down at a Kingston dub studio", "outdoor sound-system session", "one-drop tracked to tape"},
}

// genericContexts backs genres without a curated list.
var genericContexts = []string{
	"recorded in a professional studio",
	"captured live in a single room",
	"produced in a home studio setup",
	"tracked in an analog-equipped facility",
	"session recorded late at night",
}

// SceneContext maps a scene keyword to its context pool. Scanned in order;
// the first keyword contained in the caller's scene string wins and
// overrides the genre-based context entirely.
type SceneContext struct {
	Keyword string
	Pool    []string
}

var sceneContexts = []SceneContext{
	{Keyword: "studio", Pool: []string{"polished studio session", "tracked in a world-class studio", "control-room perspective mix"}},
	{Keyword: "live", Pool: []string{"live on stage with audience energy", "concert recording, crowd in the room", "festival main-stage capture"}},
	{Keyword: "bedroom", Pool: []string{"intimate bedroom recording", "DIY bedroom session", "quiet home recording at night"}},
	{Keyword: "outdoor", Pool: []string{"recorded outdoors with natural air", "field session under open sky", "street-corner performance capture"}},
	{Keyword: "club", Pool: []string{"club sound-system perspective", "recorded from the dancefloor", "late-night club atmosphere"}},
}

// GenreContexts returns the curated context list for a genre, if any.
func GenreContexts(genreKey string) ([]string, bool) {
	c, ok := genreContexts[genreKey]
	return c, ok
}

// GenericContexts returns the fallback context pool.
func GenericContexts() []string {
	out := make([]string, len(genericContexts))
	copy(out, genericContexts)
	return out
}

// SceneContexts returns the scene keyword table in scan order.
func SceneContexts() []SceneContext {
	out := make([]SceneContext, len(sceneContexts))
	copy(out, sceneContexts)
	return out
}
