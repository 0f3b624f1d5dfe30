package registry

// genrePriority fixes the order genres are checked during classification.
// Narrow subgenres come before the broad families that share their keywords
// ("warehouse" must hit techno before "house", "garage rock" must hit punk
// before "rock"), so the order below is load-bearing.
var genrePriority = []string{
	"synthwave",
	"dnb",
	"dubstep",
	"trance",
	"techno",
	"house",
	"trap",
	"lofi",
	"ambient",
	"orchestral",
	"jazz",
	"blues",
	"rnb",
	"funk",
	"soul",
	"reggae",
	"metal",
	"punk",
	"indie",
	"country",
	"folk",
	"rock",
	"classical",
	"pop",
}

// genreAliases catches phrases that name a genre without using any of its
// keywords. Scanned in order, only after the direct keyword pass misses.
var genreAliases = []GenreAlias{
	{Match: "hip hop", Genre: "trap"},
	{Match: "hip-hop", Genre: "trap"},
	{Match: "boom bap", Genre: "trap"},
	{Match: "grime", Genre: "trap"},
	{Match: "rap", Genre: "trap"},
	{Match: "r&b", Genre: "rnb"},
	{Match: "rnb", Genre: "rnb"},
	{Match: "rhythm and blues", Genre: "rnb"},
	{Match: "edm", Genre: "house"},
	{Match: "disco", Genre: "house"},
	{Match: "electronic", Genre: "house"},
	{Match: "electro", Genre: "house"},
	{Match: "uk garage", Genre: "house"},
	{Match: "dance music", Genre: "house"},
	{Match: "idm", Genre: "ambient"},
	{Match: "chillout", Genre: "ambient"},
	{Match: "motown", Genre: "soul"},
	{Match: "lounge", Genre: "jazz"},
	{Match: "hardcore", Genre: "punk"},
	{Match: "shoegaze", Genre: "indie"},
	{Match: "bluegrass", Genre: "folk"},
	{Match: "film score", Genre: "orchestral"},
	{Match: "soundtrack", Genre: "orchestral"},
}

// moodFallbacks resolves a genre from mood language when neither keywords
// nor aliases matched. One candidate is picked at random, so this path only
// runs when the caller supplied a random source.
var moodFallbacks = []MoodFallback{
	{Keyword: "chill", Genres: []string{"lofi", "house", "rnb"}},
	{Keyword: "relax", Genres: []string{"ambient", "lofi", "jazz"}},
	{Keyword: "dark", Genres: []string{"techno", "trap", "metal"}},
	{Keyword: "moody", Genres: []string{"rnb", "trap", "indie"}},
	{Keyword: "melanchol", Genres: []string{"blues", "indie", "classical"}},
	{Keyword: "sad", Genres: []string{"blues", "folk", "indie"}},
	{Keyword: "happy", Genres: []string{"pop", "funk", "house"}},
	{Keyword: "upbeat", Genres: []string{"pop", "house", "funk"}},
	{Keyword: "energetic", Genres: []string{"dnb", "techno", "punk"}},
	{Keyword: "epic", Genres: []string{"orchestral", "metal", "trance"}},
	{Keyword: "dream", Genres: []string{"ambient", "synthwave", "indie"}},
	{Keyword: "romantic", Genres: []string{"rnb", "soul", "jazz"}},
	{Keyword: "nostalg", Genres: []string{"synthwave", "soul", "lofi"}},
	{Keyword: "angry", Genres: []string{"metal", "punk", "dubstep"}},
	{Keyword: "peaceful", Genres: []string{"ambient", "classical", "folk"}},
	{Keyword: "groovy", Genres: []string{"funk", "house", "soul"}},
}

// defaultGenre backs unknown genre keys so selection never dead-ends.
var defaultGenre = GenreDefinition{
	Key:         "default",
	Name:        "Eclectic",
	Keywords:    nil,
	Description: "Genre-agnostic fallback palette",
	Pools: map[string]Pool{
		"core":   {PickRange: [2]int{2, 3}, Instruments: []string{"piano", "acoustic guitar", "bass guitar", "drum kit"}},
		"color":  {PickRange: [2]int{1, 2}, ChanceToInclude: 0.6, Instruments: []string{"strings", "synth pad", "electric guitar", "organ"}},
		"accent": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.3, Instruments: []string{"glockenspiel", "shaker", "tambourine"}},
	},
	PoolOrder:      []string{"core", "color", "accent"},
	MaxTags:        5,
	ExclusionRules: [][]string{{"piano", "organ"}},
	BPM:            BPMRange{Min: 80, Max: 130, Typical: 105},
	Moods:          []string{"warm", "open", "curious", "steady"},
}

var genres = map[string]GenreDefinition{
	"jazz": {
		Key:         "jazz",
		Name:        "Jazz",
		Keywords:    []string{"jazz", "bebop", "swing", "fusion", "bossa nova"},
		Description: "Swung rhythms, extended harmony, interplay between soloists",
		Pools: map[string]Pool{
			"core":   {PickRange: [2]int{2, 2}, Instruments: []string{"piano", "upright bass", "rhodes"}},
			"rhythm": {PickRange: [2]int{1, 1}, Instruments: []string{"brushed drums", "ride cymbal groove"}},
			"lead":   {PickRange: [2]int{1, 2}, Instruments: []string{"tenor saxophone", "trumpet", "trombone", "clarinet"}},
			"color":  {PickRange: [2]int{0, 2}, ChanceToInclude: 0.5, Instruments: []string{"vibraphone", "jazz guitar", "flugelhorn"}},
		},
		PoolOrder: []string{"core", "rhythm", "lead", "color"},
		MaxTags:   6,
		ExclusionRules: [][]string{
			{"piano", "rhodes"},
			{"tenor saxophone", "clarinet"},
		},
		BPM:   BPMRange{Min: 70, Max: 180, Typical: 120},
		Moods: []string{"smoky", "smooth", "sophisticated", "late-night", "wistful"},
	},
	"blues": {
		Key:         "blues",
		Name:        "Blues",
		Keywords:    []string{"blues", "delta", "twelve bar", "12-bar"},
		Description: "Shuffle grooves, bent notes, call and response",
		Pools: map[string]Pool{
			"core":   {PickRange: [2]int{2, 2}, Instruments: []string{"electric guitar", "bass guitar", "resonator guitar"}},
			"rhythm": {PickRange: [2]int{1, 1}, Instruments: []string{"shuffle drums", "stomp and snap"}},
			"lead":   {PickRange: [2]int{1, 1}, Instruments: []string{"slide guitar", "harmonica", "blues organ"}},
			"color":  {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"horn section", "tremolo guitar", "barrelhouse piano"}},
		},
		PoolOrder: []string{"core", "rhythm", "lead", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"slide guitar", "tremolo guitar"},
			{"electric guitar", "resonator guitar"},
		},
		BPM:   BPMRange{Min: 60, Max: 130, Typical: 85},
		Moods: []string{"gritty", "mournful", "road-worn", "defiant", "slow-burning"},
	},
	"classical": {
		Key:         "classical",
		Name:        "Classical",
		Keywords:    []string{"classical", "baroque", "sonata", "chamber", "symphony"},
		Description: "Chamber and symphonic writing with formal structure",
		Pools: map[string]Pool{
			"core":     {PickRange: [2]int{1, 2}, Instruments: []string{"string quartet", "grand piano", "harpsichord"}},
			"ensemble": {PickRange: [2]int{1, 2}, Instruments: []string{"violin section", "cello section", "double bass section", "viola section"}},
			"winds":    {PickRange: [2]int{0, 2}, ChanceToInclude: 0.6, Instruments: []string{"flute", "clarinet", "bassoon", "oboe"}},
			"color":    {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"harp", "french horn"}},
		},
		PoolOrder: []string{"core", "ensemble", "winds", "color"},
		MaxTags:   7,
		ExclusionRules: [][]string{
			{"grand piano", "harpsichord"},
		},
		BPM:   BPMRange{Min: 60, Max: 140, Typical: 90},
		Moods: []string{"elegant", "contemplative", "stately", "tender", "turbulent"},
	},
	"orchestral": {
		Key:         "orchestral",
		Name:        "Orchestral / Cinematic",
		Keywords:    []string{"orchestral", "orchestra", "cinematic", "epic score", "trailer"},
		Description: "Large-ensemble cinematic scoring with heavy dynamics",
		Pools: map[string]Pool{
			"core":       {PickRange: [2]int{2, 2}, Instruments: []string{"full string ensemble", "low brass", "cello ostinato"}},
			"percussion": {PickRange: [2]int{1, 2}, Instruments: []string{"timpani", "taiko ensemble", "cinematic percussion"}},
			"color":      {PickRange: [2]int{0, 2}, ChanceToInclude: 0.6, Instruments: []string{"french horn", "harp", "celesta", "choir"}},
			"lead":       {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"solo violin", "solo cello", "ethereal soprano"}},
		},
		PoolOrder: []string{"core", "percussion", "color", "lead"},
		MaxTags:   7,
		ExclusionRules: [][]string{
			{"timpani", "taiko ensemble"},
			{"solo violin", "solo cello"},
		},
		BPM:   BPMRange{Min: 60, Max: 160, Typical: 100},
		Moods: []string{"epic", "sweeping", "heroic", "ominous", "triumphant"},
	},
	"lofi": {
		Key:         "lofi",
		Name:        "Lo-Fi",
		Keywords:    []string{"lofi", "lo-fi", "chillhop", "study beats"},
		Description: "Dusty loops, mellow keys, deliberately imperfect textures",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"dusty drum loop", "mellow rhodes", "soft piano"}},
			"bass":    {PickRange: [2]int{1, 1}, Instruments: []string{"muted bass guitar", "soft sub bass"}},
			"texture": {PickRange: [2]int{1, 2}, ChanceToInclude: 0.7, Instruments: []string{"vinyl crackle", "tape hiss", "rain ambience"}},
			"color":   {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"muted trumpet", "nylon guitar", "music box"}},
		},
		PoolOrder: []string{"core", "bass", "texture", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"vinyl crackle", "tape hiss"},
			{"mellow rhodes", "soft piano"},
		},
		BPM:   BPMRange{Min: 60, Max: 95, Typical: 80},
		Moods: []string{"hazy", "nostalgic", "cozy", "rainy-day", "drowsy"},
	},
	"ambient": {
		Key:         "ambient",
		Name:        "Ambient",
		Keywords:    []string{"ambient", "drone", "soundscape", "atmospheric"},
		Description: "Slow-moving textures and space over pulse",
		Pools: map[string]Pool{
			"core":     {PickRange: [2]int{2, 2}, Instruments: []string{"evolving synth pad", "drone layer", "tape loops"}},
			"texture":  {PickRange: [2]int{1, 2}, Instruments: []string{"granular textures", "field recordings", "shimmer reverb guitar"}},
			"color":    {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"glass bells", "bowed vibraphone"}},
			"movement": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.3, Instruments: []string{"slow arpeggio", "sub pulses"}},
		},
		PoolOrder: []string{"core", "texture", "color", "movement"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"granular textures", "field recordings"},
		},
		BPM:   BPMRange{Min: 50, Max: 90, Typical: 70},
		Moods: []string{"weightless", "meditative", "glacial", "luminous", "cavernous"},
	},
	"house": {
		Key:         "house",
		Name:        "House",
		Keywords:    []string{"house", "deep house", "disco house", "four on the floor"},
		Description: "Steady four-on-the-floor grooves with warm chords",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"four-on-the-floor kick", "deep bassline"}},
			"groove":  {PickRange: [2]int{1, 2}, Instruments: []string{"shuffled hi-hats", "clap stack", "conga loop"}},
			"harmony": {PickRange: [2]int{1, 1}, ChanceToInclude: 0.8, Instruments: []string{"warm synth chords", "piano stabs", "organ stabs"}},
			"color":   {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"vocal chops", "filtered disco sample"}},
		},
		PoolOrder: []string{"core", "groove", "harmony", "color"},
		MaxTags:   6,
		ExclusionRules: [][]string{
			{"piano stabs", "organ stabs"},
		},
		BPM:   BPMRange{Min: 118, Max: 128, Typical: 124},
		Moods: []string{"groovy", "uplifting", "hypnotic", "sun-soaked", "after-hours"},
	},
	"techno": {
		Key:         "techno",
		Name:        "Techno",
		Keywords:    []string{"techno", "warehouse", "berlin"},
		Description: "Relentless machine grooves built for dark rooms",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"driving kick", "rumbling bassline"}},
			"rhythm":  {PickRange: [2]int{1, 2}, Instruments: []string{"industrial percussion", "sixteenth hi-hats", "rim clicks"}},
			"synth":   {PickRange: [2]int{1, 1}, Instruments: []string{"acid synth line", "detuned stabs", "modular sequence"}},
			"texture": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"warehouse reverb", "white-noise risers"}},
		},
		PoolOrder: []string{"core", "rhythm", "synth", "texture"},
		MaxTags:   6,
		ExclusionRules: [][]string{
			{"acid synth line", "modular sequence"},
		},
		BPM:   BPMRange{Min: 125, Max: 145, Typical: 132},
		Moods: []string{"dark", "relentless", "cavernous", "hypnotic", "mechanical"},
	},
	"trance": {
		Key:         "trance",
		Name:        "Trance",
		Keywords:    []string{"trance", "psytrance", "goa"},
		Description: "Soaring leads, long builds, euphoric drops",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"supersaw lead", "rolling bassline"}},
			"groove":  {PickRange: [2]int{1, 1}, Instruments: []string{"offbeat hi-hats", "snare rolls"}},
			"harmony": {PickRange: [2]int{1, 1}, ChanceToInclude: 0.8, Instruments: []string{"plucked arpeggio", "gated pads"}},
			"color":   {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"ethereal female vocal", "piano breakdown"}},
		},
		PoolOrder: []string{"core", "groove", "harmony", "color"},
		MaxTags:   6,
		ExclusionRules: [][]string{
			{"ethereal female vocal", "piano breakdown"},
		},
		BPM:   BPMRange{Min: 132, Max: 142, Typical: 138},
		Moods: []string{"euphoric", "soaring", "luminous", "yearning", "weightless"},
	},
	"dnb": {
		Key:         "dnb",
		Name:        "Drum & Bass",
		Keywords:    []string{"drum and bass", "drum n bass", "dnb", "jungle", "liquid"},
		Description: "Fast chopped breaks over deep low-end pressure",
		Pools: map[string]Pool{
			"core":       {PickRange: [2]int{2, 2}, Instruments: []string{"fast breakbeat", "reese bass"}},
			"bass":       {PickRange: [2]int{0, 1}, ChanceToInclude: 0.8, Instruments: []string{"sub bass swells", "neuro bass stabs"}},
			"atmosphere": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.6, Instruments: []string{"pad washes", "jungle chords"}},
			"color":      {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"ragga vocal chops", "amen fills"}},
		},
		PoolOrder: []string{"core", "bass", "atmosphere", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"reese bass", "neuro bass stabs"},
		},
		BPM:   BPMRange{Min: 160, Max: 180, Typical: 174},
		Moods: []string{"frenetic", "liquid", "shadowy", "weightless", "rolling"},
	},
	"dubstep": {
		Key:         "dubstep",
		Name:        "Dubstep",
		Keywords:    []string{"dubstep", "wobble", "bass music", "riddim"},
		Description: "Halftime weight with aggressive bass design",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"halftime drums", "wobble bass"}},
			"bass":    {PickRange: [2]int{0, 1}, ChanceToInclude: 0.7, Instruments: []string{"sub drops", "growl bass"}},
			"texture": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"metallic fx", "cinematic risers"}},
			"color":   {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"vocal formant chops", "orchestral hits"}},
		},
		PoolOrder: []string{"core", "bass", "texture", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"wobble bass", "growl bass"},
		},
		BPM:   BPMRange{Min: 138, Max: 142, Typical: 140},
		Moods: []string{"menacing", "colossal", "gritty", "cinematic", "seismic"},
	},
	"trap": {
		Key:         "trap",
		Name:        "Trap",
		Keywords:    []string{"trap", "drill", "phonk"},
		Description: "Booming 808s, rapid hats, icy melodic loops",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"808 bass", "trap hi-hats"}},
			"rhythm":  {PickRange: [2]int{1, 1}, Instruments: []string{"punchy kick", "crisp snare rolls"}},
			"melody":  {PickRange: [2]int{1, 1}, ChanceToInclude: 0.8, Instruments: []string{"dark piano loop", "bell melody", "moody synth lead"}},
			"texture": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"ambient pad", "vinyl texture"}},
		},
		PoolOrder: []string{"core", "rhythm", "melody", "texture"},
		MaxTags:   6,
		ExclusionRules: [][]string{
			{"bell melody", "moody synth lead"},
		},
		BPM:   BPMRange{Min: 130, Max: 170, Typical: 140},
		Moods: []string{"icy", "brooding", "swaggering", "nocturnal", "menacing"},
	},
	"rnb": {
		Key:         "rnb",
		Name:        "R&B",
		Keywords:    []string{"neo soul", "slow jam", "contemporary r&b"},
		Description: "Silky grooves, lush harmony, close vocals",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"smooth electric piano", "finger-snap groove", "soft drum machine"}},
			"bass":    {PickRange: [2]int{1, 1}, Instruments: []string{"round bass guitar", "sub bass pulse"}},
			"harmony": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.7, Instruments: []string{"lush vocal harmonies", "airy pads"}},
			"color":   {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"muted guitar licks", "saxophone lines"}},
		},
		PoolOrder: []string{"core", "bass", "harmony", "color"},
		MaxTags:   6,
		ExclusionRules: [][]string{
			{"round bass guitar", "sub bass pulse"},
			{"finger-snap groove", "soft drum machine"},
		},
		BPM:   BPMRange{Min: 60, Max: 100, Typical: 72},
		Moods: []string{"silky", "intimate", "longing", "confident", "after-midnight"},
	},
	"soul": {
		Key:         "soul",
		Name:        "Soul",
		Keywords:    []string{"soul", "stax", "gospel"},
		Description: "Warm organs, horn sections, testifying energy",
		Pools: map[string]Pool{
			"core":   {PickRange: [2]int{2, 2}, Instruments: []string{"hammond organ", "motown bassline"}},
			"rhythm": {PickRange: [2]int{1, 1}, Instruments: []string{"tight drum groove", "tambourine backbeat"}},
			"horns":  {PickRange: [2]int{0, 1}, ChanceToInclude: 0.7, Instruments: []string{"horn section", "baritone sax riffs"}},
			"color":  {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"wah guitar", "string section"}},
		},
		PoolOrder: []string{"core", "rhythm", "horns", "color"},
		MaxTags:   6,
		ExclusionRules: [][]string{
			{"horn section", "baritone sax riffs"},
		},
		BPM:   BPMRange{Min: 70, Max: 115, Typical: 92},
		Moods: []string{"heartfelt", "warm", "testifying", "bittersweet", "gliding"},
	},
	"funk": {
		Key:         "funk",
		Name:        "Funk",
		Keywords:    []string{"funk", "funky", "p-funk", "groove"},
		Description: "Syncopated pocket playing and percussive attitude",
		Pools: map[string]Pool{
			"core":  {PickRange: [2]int{2, 2}, Instruments: []string{"slap bass", "syncopated drums"}},
			"keys":  {PickRange: [2]int{1, 1}, ChanceToInclude: 0.8, Instruments: []string{"clavinet riff", "funky rhodes"}},
			"horns": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.7, Instruments: []string{"punchy horn stabs", "trombone slides"}},
			"color": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"talkbox lead", "congas", "wah guitar chops"}},
		},
		PoolOrder: []string{"core", "keys", "horns", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"clavinet riff", "funky rhodes"},
		},
		BPM:   BPMRange{Min: 95, Max: 120, Typical: 108},
		Moods: []string{"strutting", "greasy", "playful", "locked-in", "swaggering"},
	},
	"reggae": {
		Key:         "reggae",
		Name:        "Reggae",
		Keywords:    []string{"reggae", "dub", "roots", "ska"},
		Description: "One-drop grooves, offbeat skanks, heavy dub space",
		Pools: map[string]Pool{
			"core":  {PickRange: [2]int{2, 2}, Instruments: []string{"one-drop drums", "deep dub bass"}},
			"skank": {PickRange: [2]int{1, 1}, Instruments: []string{"offbeat guitar skank", "bubbling organ"}},
			"color": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"melodica lead", "horn riffs"}},
			"fx":    {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"spring reverb splashes", "tape delay throws"}},
		},
		PoolOrder: []string{"core", "skank", "color", "fx"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"spring reverb splashes", "tape delay throws"},
		},
		BPM:   BPMRange{Min: 60, Max: 90, Typical: 75},
		Moods: []string{"sun-drenched", "easy", "rootsy", "heavyweight", "simmering"},
	},
	"rock": {
		Key:         "rock",
		Name:        "Rock",
		Keywords:    []string{"rock", "classic rock", "grunge", "alternative"},
		Description: "Guitar-driven energy with a live-band backbone",
		Pools: map[string]Pool{
			"core":  {PickRange: [2]int{2, 2}, Instruments: []string{"overdriven electric guitar", "bass guitar"}},
			"drums": {PickRange: [2]int{1, 1}, Instruments: []string{"powerful drum kit", "driving backbeat"}},
			"leads": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.7, Instruments: []string{"guitar lead", "hammond swells"}},
			"color": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"piano", "tambourine", "acoustic strums"}},
		},
		PoolOrder: []string{"core", "drums", "leads", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"hammond swells", "piano"},
		},
		BPM:   BPMRange{Min: 100, Max: 160, Typical: 128},
		Moods: []string{"anthemic", "driving", "restless", "defiant", "wide-open"},
	},
	"metal": {
		Key:         "metal",
		Name:        "Metal",
		Keywords:    []string{"metal", "djent", "thrash", "doom"},
		Description: "Down-tuned riffs, double kick, wall-of-sound weight",
		Pools: map[string]Pool{
			"core":  {PickRange: [2]int{2, 2}, Instruments: []string{"down-tuned rhythm guitar", "double-kick drums"}},
			"bass":  {PickRange: [2]int{1, 1}, Instruments: []string{"growling bass", "five-string bass"}},
			"leads": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.6, Instruments: []string{"shred lead guitar", "harmonized guitar leads"}},
			"color": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.3, Instruments: []string{"symphonic strings", "choir pads"}},
		},
		PoolOrder: []string{"core", "bass", "leads", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"shred lead guitar", "harmonized guitar leads"},
			{"growling bass", "five-string bass"},
		},
		BPM:   BPMRange{Min: 120, Max: 200, Typical: 160},
		Moods: []string{"ferocious", "bleak", "triumphant", "crushing", "furious"},
	},
	"punk": {
		Key:         "punk",
		Name:        "Punk",
		Keywords:    []string{"punk", "garage rock", "riot"},
		Description: "Fast, raw, three chords and conviction",
		Pools: map[string]Pool{
			"core":  {PickRange: [2]int{2, 2}, Instruments: []string{"buzzsaw power chords", "pounding drums"}},
			"bass":  {PickRange: [2]int{1, 1}, Instruments: []string{"driving pick bass", "fuzz bass"}},
			"extra": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.5, Instruments: []string{"gang vocals", "snotty lead line"}},
		},
		PoolOrder: []string{"core", "bass", "extra"},
		MaxTags:   4,
		ExclusionRules: [][]string{
			{"driving pick bass", "fuzz bass"},
		},
		BPM:   BPMRange{Min: 150, Max: 200, Typical: 180},
		Moods: []string{"raw", "urgent", "bratty", "reckless", "wired"},
	},
	"indie": {
		Key:         "indie",
		Name:        "Indie / Bedroom Pop",
		Keywords:    []string{"indie", "bedroom pop", "jangle", "dream pop"},
		Description: "Jangly guitars and intimate, homespun production",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"jangly guitar", "soft drum kit"}},
			"bass":    {PickRange: [2]int{1, 1}, Instruments: []string{"melodic bass guitar", "synth bass hum"}},
			"texture": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.6, Instruments: []string{"lo-fi synth pad", "chorused guitar"}},
			"color":   {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"glockenspiel", "casio keys", "whistling"}},
		},
		PoolOrder: []string{"core", "bass", "texture", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"glockenspiel", "casio keys"},
		},
		BPM:   BPMRange{Min: 80, Max: 130, Typical: 104},
		Moods: []string{"wistful", "daydreaming", "tender", "restless", "bittersweet"},
	},
	"folk": {
		Key:         "folk",
		Name:        "Folk",
		Keywords:    []string{"folk", "americana", "singer-songwriter", "acoustic ballad"},
		Description: "Acoustic storytelling with roots instrumentation",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"fingerpicked acoustic guitar", "upright bass"}},
			"rhythm":  {PickRange: [2]int{0, 1}, ChanceToInclude: 0.6, Instruments: []string{"brushed snare", "stomp and clap"}},
			"color":   {PickRange: [2]int{1, 2}, ChanceToInclude: 0.6, Instruments: []string{"fiddle", "banjo", "mandolin"}},
			"texture": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.3, Instruments: []string{"harmonium drone", "dulcimer"}},
		},
		PoolOrder: []string{"core", "rhythm", "color", "texture"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"banjo", "mandolin"},
		},
		BPM:   BPMRange{Min: 70, Max: 120, Typical: 95},
		Moods: []string{"earthy", "homespun", "aching", "hopeful", "weathered"},
	},
	"country": {
		Key:         "country",
		Name:        "Country",
		Keywords:    []string{"country", "honky-tonk", "nashville", "outlaw"},
		Description: "Twang, train beats, and pedal steel heartbreak",
		Pools: map[string]Pool{
			"core":   {PickRange: [2]int{2, 2}, Instruments: []string{"twangy telecaster", "acoustic rhythm guitar"}},
			"rhythm": {PickRange: [2]int{1, 1}, Instruments: []string{"train-beat drums", "walking bass"}},
			"color":  {PickRange: [2]int{1, 1}, ChanceToInclude: 0.6, Instruments: []string{"pedal steel", "fiddle", "dobro"}},
			"extra":  {PickRange: [2]int{0, 1}, ChanceToInclude: 0.3, Instruments: []string{"honky-tonk piano", "mandolin chop"}},
		},
		PoolOrder: []string{"core", "rhythm", "color", "extra"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"pedal steel", "dobro"},
		},
		BPM:   BPMRange{Min: 80, Max: 140, Typical: 110},
		Moods: []string{"dusty", "heartbroken", "rowdy", "proud", "easygoing"},
	},
	"pop": {
		Key:         "pop",
		Name:        "Pop",
		Keywords:    []string{"pop", "radio-ready", "chart-topping", "synth-pop"},
		Description: "Hook-forward modern production with polished edges",
		Pools: map[string]Pool{
			"core":    {PickRange: [2]int{2, 2}, Instruments: []string{"punchy drum programming", "synth bass"}},
			"harmony": {PickRange: [2]int{1, 1}, ChanceToInclude: 0.8, Instruments: []string{"shimmering synth pads", "piano chords"}},
			"hooks":   {PickRange: [2]int{1, 1}, ChanceToInclude: 0.7, Instruments: []string{"bright synth lead", "vocal chop hook"}},
			"color":   {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"funky guitar chops", "claps and snaps"}},
		},
		PoolOrder: []string{"core", "harmony", "hooks", "color"},
		MaxTags:   6,
		ExclusionRules: [][]string{
			{"bright synth lead", "vocal chop hook"},
		},
		BPM:   BPMRange{Min: 95, Max: 125, Typical: 112},
		Moods: []string{"glossy", "euphoric", "flirty", "bittersweet", "radiant"},
	},
	"synthwave": {
		Key:         "synthwave",
		Name:        "Synthwave",
		Keywords:    []string{"synthwave", "retrowave", "outrun", "80s synth"},
		Description: "Neon-lit analog nostalgia with gated drums",
		Pools: map[string]Pool{
			"core":  {PickRange: [2]int{2, 2}, Instruments: []string{"analog synth bass", "gated reverb drums"}},
			"leads": {PickRange: [2]int{1, 1}, ChanceToInclude: 0.8, Instruments: []string{"neon synth lead", "arpeggiated sequence"}},
			"pads":  {PickRange: [2]int{1, 1}, Instruments: []string{"lush analog pads", "night-drive pads"}},
			"color": {PickRange: [2]int{0, 1}, ChanceToInclude: 0.4, Instruments: []string{"electric guitar solo", "FM bells"}},
		},
		PoolOrder: []string{"core", "leads", "pads", "color"},
		MaxTags:   5,
		ExclusionRules: [][]string{
			{"neon synth lead", "arpeggiated sequence"},
		},
		BPM:   BPMRange{Min: 80, Max: 118, Typical: 100},
		Moods: []string{"neon-lit", "nostalgic", "midnight", "chrome", "wind-swept"},
	},
}
