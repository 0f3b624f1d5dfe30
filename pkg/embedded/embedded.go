package embedded

import (
	_ "embed"
)

// Embed all static data files
//
//go:embed data/core_data/progressions.json
var ProgressionsJSON []byte

//go:embed data/core_data/title_words.json
var TitleWordsJSON []byte

//go:embed data/prompts/enhance_system.txt
var EnhanceSystemPromptTxt []byte

//go:embed data/prompts/title_system.txt
var TitleSystemPromptTxt []byte
