package normalizer

// Language name variants (including non-English spellings, three-letter
// abbreviations, and regional variants) to ISO 639-1 codes.

var languageCodes = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"español":    "es",
	"french":     "fr",
	"français":   "fr",
	"german":     "de",
	"deutsch":    "de",
	"chinese":    "zh",
	"mandarin":   "zh",
	"mandarin chinese": "zh",
	"cantonese":  "zh-yue",
	"japanese":   "ja",
	"korean":     "ko",
	"arabic":     "ar",
	"hindi":      "hi",
	"portuguese": "pt",
	"português":  "pt",
	"russian":    "ru",
	"italian":    "it",
	"italiano":   "it",
	"dutch":      "nl",
	"nederlands": "nl",
	"polish":     "pl",
	"turkish":    "tr",
	"swedish":    "sv",
	"norwegian":  "no",
	"danish":     "da",
	"finnish":    "fi",
	"greek":      "el",
	"hebrew":     "he",
	"thai":       "th",
	"vietnamese": "vi",
	"indonesian": "id",
	"malay":      "ms",
	"tagalog":    "tl",
	"filipino":   "tl",
	"bengali":    "bn",
	"urdu":       "ur",
	"punjabi":    "pa",
	"tamil":      "ta",
	"telugu":     "te",
	"marathi":    "mr",
	"gujarati":   "gu",
	"kannada":    "kn",
	"ukrainian":  "uk",
	"czech":      "cs",
	"hungarian":  "hu",
	"romanian":   "ro",
	"serbian":    "sr",
	"croatian":   "hr",
	"bulgarian":  "bg",
	"slovak":     "sk",
	"slovenian":  "sl",
	"lithuanian": "lt",
	"latvian":    "lv",
	"estonian":   "et",
	"persian":    "fa",
	"farsi":      "fa",
	"swahili":    "sw",
	"zulu":       "zu",
	"afrikaans":  "af",
	"yoruba":     "yo",
	"igbo":       "ig",
	"amharic":    "am",
	"somali":     "so",
	"hausa":      "ha",

	// Abbreviations
	"eng": "en",
	"spa": "es",
	"fra": "fr",
	"deu": "de",
	"chi": "zh",
	"jpn": "ja",
	"kor": "ko",
	"ara": "ar",
	"hin": "hi",
	"por": "pt",
	"rus": "ru",
	"ita": "it",

	// Regional variants
	"american english":    "en-US",
	"british english":     "en-GB",
	"canadian english":    "en-CA",
	"australian english":  "en-AU",
	"american spanish":    "es-US",
	"mexican spanish":     "es-MX",
	"european spanish":    "es-ES",
	"brazilian portuguese": "pt-BR",
	"european portuguese": "pt-PT",
	"simplified chinese":  "zh-CN",
	"traditional chinese": "zh-TW",
}

// Proficiency descriptor variants, including CEFR levels, to the four
// canonical buckets. Order matters: longer descriptors are matched first
// so "native speaker" never half-matches as "native".
var proficiencyOrder = []string{
	"mother tongue", "first language", "native speaker",
	"native proficiency", "native", "l1",
	"full professional", "professional", "proficient", "advanced",
	"bilingual", "fluent", "c2", "c1",
	"working knowledge", "limited working", "conversational",
	"intermediate", "functional", "b2", "b1",
	"elementary", "beginner", "basic", "limited", "some", "a2", "a1",
}

var proficiencyLevels = map[string]string{
	"native":             "native",
	"mother tongue":      "native",
	"first language":     "native",
	"l1":                 "native",
	"native speaker":     "native",
	"native proficiency": "native",

	"fluent":            "fluent",
	"proficient":        "fluent",
	"advanced":          "fluent",
	"c2":                "fluent",
	"c1":                "fluent",
	"professional":      "fluent",
	"bilingual":         "fluent",
	"full professional": "fluent",

	"conversational":   "conversational",
	"intermediate":     "conversational",
	"b2":               "conversational",
	"b1":               "conversational",
	"working knowledge": "conversational",
	"limited working":  "conversational",
	"functional":       "conversational",

	"basic":      "basic",
	"beginner":   "basic",
	"elementary": "basic",
	"a2":         "basic",
	"a1":         "basic",
	"some":       "basic",
	"limited":    "basic",
}

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
	"hi": "Hindi",
	"pt": "Portuguese",
	"ru": "Russian",
	"it": "Italian",
	"nl": "Dutch",
	"pl": "Polish",
	"tr": "Turkish",
	"sv": "Swedish",
	"no": "Norwegian",
	"da": "Danish",
	"fi": "Finnish",
	"el": "Greek",
	"he": "Hebrew",
	"th": "Thai",
	"vi": "Vietnamese",
	"id": "Indonesian",
	"ms": "Malay",
	"tl": "Filipino",
	"bn": "Bengali",
	"ur": "Urdu",
	"pa": "Punjabi",
	"ta": "Tamil",
	"te": "Telugu",
	"mr": "Marathi",
	"gu": "Gujarati",
	"kn": "Kannada",
	"fa": "Persian",
	"sw": "Swahili",
	"zu": "Zulu",
	"af": "Afrikaans",
}
