package normalizer

// Gender vocabulary (inclusive). Only applied to self-reported fields.

var genderMappings = map[string]string{
	"male": "male",
	"m":    "male",
	"man":  "male",
	"he":   "male",
	"his":  "male",
	"him":  "male",

	"female": "female",
	"f":      "female",
	"woman":  "female",
	"she":    "female",
	"her":    "female",
	"hers":   "female",

	"non-binary":  "non-binary",
	"nonbinary":   "non-binary",
	"nb":          "non-binary",
	"enby":        "non-binary",
	"genderqueer": "non-binary",
	"genderfluid": "non-binary",
	"they":        "non-binary",
	"them":        "non-binary",

	"other":             "other",
	"prefer not to say": "prefer_not_to_say",
	"not specified":     "not_specified",
}

var genderKeyOrder = []string{
	"prefer not to say", "not specified",
	"non-binary", "nonbinary", "genderqueer", "genderfluid", "enby",
	"female", "woman", "hers", "she", "her",
	"male", "man", "his", "him", "he",
	"they", "them", "other", "nb", "f", "m",
}

var genderDisplay = map[string]string{
	"male":              "Male",
	"female":            "Female",
	"non-binary":        "Non-binary",
	"other":             "Other",
	"prefer_not_to_say": "Prefer not to say",
	"not_specified":     "Not Specified",
}

var pronounMappings = map[string]string{
	"he/him":           "he/him",
	"he/him/his":       "he/him",
	"she/her":          "she/her",
	"she/her/hers":     "she/her",
	"they/them":        "they/them",
	"they/them/theirs": "they/them",
	"ze/zir":           "ze/zir",
	"ze/hir":           "ze/hir",
	"xe/xem":           "xe/xem",
	"any pronouns":     "any",
	"all pronouns":     "any",
	"name only":        "name_only",
}

type ageBracket struct {
	name    string
	min     int
	max     int
	display string
}

// Generational brackets by current age.
var ageBrackets = []ageBracket{
	{"gen_z", 18, 27, "Gen Z (18-27)"},
	{"millennial", 28, 43, "Millennial (28-43)"},
	{"gen_x", 44, 59, "Gen X (44-59)"},
	{"boomer", 60, 78, "Baby Boomer (60-78)"},
	{"silent", 79, 99, "Silent Gen (79+)"},
}

var generationKeywords = map[string][]string{
	"gen_z":      {"gen z", "generation z", "zoomer", "born after 1996"},
	"millennial": {"millennial", "generation y", "gen y", "born 198", "born 199"},
	"gen_x":      {"gen x", "generation x", "born 196", "born 197"},
	"boomer":     {"baby boomer", "boomer", "born 194", "born 195", "born 196"},
	"silent":     {"silent generation", "born 192", "born 193"},
}

var generationOrder = []string{"gen_z", "millennial", "gen_x", "boomer", "silent"}

// Diversity vocabulary. Sensitive: matched only against self-identified
// input, never inferred.
var diversityCategories = map[string][]string{
	"african_american": {"african american", "black", "afro-american", "afro american"},
	"asian":            {"asian", "asian american", "aapi"},
	"hispanic_latino":  {"hispanic", "latino", "latina", "latinx", "latine"},
	"native_american":  {"native american", "indigenous", "american indian", "alaska native"},
	"pacific_islander": {"pacific islander", "hawaiian", "polynesian"},
	"middle_eastern":   {"middle eastern", "arab", "persian"},
	"white":            {"white", "caucasian", "european"},
	"multiracial":      {"multiracial", "mixed race", "biracial", "multiethnic"},

	"lgbtq":       {"lgbtq", "lgbt", "lgbtq+", "lgbtqia", "lgbtqia+"},
	"gay":         {"gay", "homosexual"},
	"lesbian":     {"lesbian"},
	"bisexual":    {"bisexual", "bi"},
	"transgender": {"transgender", "trans"},
	"queer":       {"queer"},

	"veteran":    {"veteran", "military", "armed forces"},
	"disability": {"disabled", "disability", "differently abled", "special needs"},
	"first_gen":  {"first generation", "first gen", "first-generation"},
	"immigrant":  {"immigrant", "refugee", "asylum"},

	"woman":         {"woman", "female"},
	"woman_in_tech": {"women in tech", "woman in technology", "female in tech"},
	"woman_in_stem": {"women in stem", "woman in stem", "female in stem"},
	"woman_leader":  {"women leader", "female leader", "woman executive"},
}

var diversityOrder = []string{
	"woman_in_tech", "woman_in_stem", "woman_leader",
	"african_american", "asian", "hispanic_latino", "native_american",
	"pacific_islander", "middle_eastern", "white", "multiracial",
	"lgbtq", "gay", "lesbian", "bisexual", "transgender", "queer",
	"veteran", "disability", "first_gen", "immigrant",
	"woman",
}

var bipocCategories = map[string]bool{
	"african_american": true,
	"asian":            true,
	"hispanic_latino":  true,
	"native_american":  true,
	"pacific_islander": true,
	"middle_eastern":   true,
}

var lgbtqCategories = map[string]bool{
	"lgbtq":       true,
	"gay":         true,
	"lesbian":     true,
	"bisexual":    true,
	"transgender": true,
	"queer":       true,
}

var womanCategories = map[string]bool{
	"woman":         true,
	"woman_in_tech": true,
	"woman_in_stem": true,
	"woman_leader":  true,
}
