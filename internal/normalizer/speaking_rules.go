package normalizer

// Session format synonyms to canonical formats.

var formatMappings = map[string]string{
	"keynote":         "keynote",
	"keynoter":        "keynote",
	"keynote speaker": "keynote",
	"keynote speech":  "keynote",
	"keynote address": "keynote",
	"opening keynote": "keynote",
	"closing keynote": "keynote",
	"plenary":         "keynote",
	"general session": "keynote",

	"workshop":           "workshop",
	"training":           "workshop",
	"training session":   "workshop",
	"hands-on":           "workshop",
	"hands on":           "workshop",
	"interactive session": "workshop",
	"breakout":           "workshop",
	"breakout session":   "workshop",
	"concurrent session": "workshop",
	"seminar":            "workshop",
	"masterclass":        "workshop",
	"bootcamp":           "workshop",

	"panel":            "panel",
	"panelist":         "panel",
	"panel discussion": "panel",
	"roundtable":       "panel",
	"round table":      "panel",
	"forum":            "panel",
	"town hall":        "panel",

	"fireside":             "fireside",
	"fireside chat":        "fireside",
	"conversation":         "fireside",
	"interview":            "fireside",
	"moderated discussion": "fireside",
	"dialogue":             "fireside",

	"webinar":        "webinar",
	"virtual":        "webinar",
	"online session": "webinar",
	"virtual event":  "webinar",
	"zoom":           "webinar",
	"livestream":     "webinar",
	"live stream":    "webinar",

	"mc":                   "emcee",
	"master of ceremonies": "emcee",
	"emcee":                "emcee",
	"host":                 "emcee",
	"moderator":            "emcee",
	"facilitator":          "emcee",

	"presentation":  "presentation",
	"talk":          "presentation",
	"speech":        "presentation",
	"lecture":       "presentation",
	"demo":          "demonstration",
	"demonstration": "demonstration",
	"performance":   "performance",
}

// formatKeyOrder fixes the containment scan so multi-word synonyms win over
// their substrings ("keynote speaker" before "keynote" is irrelevant here,
// but "master of ceremonies" must be tried before "mc").
var formatKeyOrder = []string{
	"keynote speaker", "keynote speech", "keynote address",
	"opening keynote", "closing keynote", "keynoter", "keynote",
	"plenary", "general session",
	"training session", "interactive session", "breakout session",
	"concurrent session", "hands-on", "hands on", "workshop", "training",
	"breakout", "seminar", "masterclass", "bootcamp",
	"panel discussion", "panelist", "panel", "roundtable", "round table",
	"forum", "town hall",
	"fireside chat", "fireside", "moderated discussion", "conversation",
	"interview", "dialogue",
	"online session", "virtual event", "live stream", "livestream",
	"webinar", "virtual", "zoom",
	"master of ceremonies", "emcee", "moderator", "facilitator", "host", "mc",
	"presentation", "lecture", "speech", "talk",
	"demonstration", "demo", "performance",
}

// formatPriority decides the primary format when several match.
var formatPriority = []string{"keynote", "workshop", "panel", "fireside", "webinar", "presentation"}

var audienceMappings = map[string]string{
	"c-suite":            "executives",
	"csuite":             "executives",
	"c-level":            "executives",
	"executive":          "executives",
	"executives":         "executives",
	"ceo":                "executives",
	"cfo":                "executives",
	"cto":                "executives",
	"cio":                "executives",
	"board":              "executives",
	"board of directors": "executives",
	"leadership":         "executives",
	"senior leadership":  "executives",
	"vp":                 "executives",
	"vice president":     "executives",

	"management":        "management",
	"managers":          "management",
	"middle management": "management",
	"directors":         "management",
	"supervisors":       "management",
	"team leads":        "management",

	"sales":                "sales_teams",
	"sales team":           "sales_teams",
	"sales force":          "sales_teams",
	"salespeople":          "sales_teams",
	"business development": "sales_teams",
	"account managers":     "sales_teams",

	"hr":                       "hr_professionals",
	"human resources":          "hr_professionals",
	"people team":              "hr_professionals",
	"talent":                   "hr_professionals",
	"recruiting":               "hr_professionals",
	"l&d":                      "hr_professionals",
	"learning and development": "hr_professionals",

	"technical":       "technical_teams",
	"developers":      "technical_teams",
	"engineers":       "technical_teams",
	"it":              "technical_teams",
	"tech teams":      "technical_teams",
	"programmers":     "technical_teams",
	"data scientists": "technical_teams",

	"healthcare":         "healthcare_professionals",
	"medical":            "healthcare_professionals",
	"doctors":            "healthcare_professionals",
	"physicians":         "healthcare_professionals",
	"nurses":             "healthcare_professionals",
	"clinicians":         "healthcare_professionals",
	"healthcare workers": "healthcare_professionals",

	"educators":         "educators",
	"teachers":          "educators",
	"faculty":           "educators",
	"professors":        "educators",
	"academic":          "educators",
	"students":          "students",
	"university":        "students",
	"college":           "students",
	"graduate students": "students",

	"general audience":  "general_public",
	"public":            "general_public",
	"mixed":             "general_public",
	"all employees":     "all_staff",
	"all staff":         "all_staff",
	"company-wide":      "all_staff",
	"organization-wide": "all_staff",

	"entrepreneurs":       "entrepreneurs",
	"startups":            "entrepreneurs",
	"founders":            "entrepreneurs",
	"investors":           "investors",
	"vcs":                 "investors",
	"venture capitalists": "investors",
	"nonprofit":           "nonprofit",
	"non-profit":          "nonprofit",
	"association":         "associations",
	"government":          "government",
	"public sector":       "government",
}

var audienceKeyOrder = []string{
	"board of directors", "senior leadership", "vice president",
	"c-suite", "csuite", "c-level", "executives", "executive",
	"ceo", "cfo", "cto", "cio", "board", "leadership", "vp",
	"middle management", "management", "managers", "directors",
	"supervisors", "team leads",
	"sales team", "sales force", "salespeople", "business development",
	"account managers", "sales",
	"human resources", "people team", "learning and development",
	"recruiting", "talent", "l&d", "hr",
	"data scientists", "tech teams", "technical", "developers",
	"engineers", "programmers", "it",
	"healthcare workers", "healthcare", "medical", "doctors",
	"physicians", "nurses", "clinicians",
	"graduate students", "educators", "teachers", "faculty", "professors",
	"academic", "students", "university", "college",
	"general audience", "all employees", "all staff", "company-wide",
	"organization-wide", "public sector", "public", "mixed",
	"entrepreneurs", "startups", "founders",
	"venture capitalists", "investors", "vcs",
	"non-profit", "nonprofit", "association", "government",
}

// audienceSectors maps canonical audiences to the sector they imply.
var audienceSectors = map[string]string{
	"executives":               "corporate",
	"management":               "corporate",
	"sales_teams":              "corporate",
	"hr_professionals":         "corporate",
	"technical_teams":          "corporate",
	"all_staff":                "corporate",
	"healthcare_professionals": "healthcare",
	"educators":                "education",
	"students":                 "education",
	"nonprofit":                "nonprofit",
	"government":               "government",
}

var audiencePriority = []string{
	"executives", "management", "healthcare_professionals",
	"educators", "sales_teams", "hr_professionals", "general_public",
}

type sizeBracket struct {
	name    string
	min     int
	max     int // 0 means open-ended
	display string
}

var sizeBrackets = []sizeBracket{
	{"small", 1, 50, "Small (1-50)"},
	{"medium", 51, 500, "Medium (51-500)"},
	{"large", 501, 5000, "Large (501-5000)"},
	{"xlarge", 5001, 0, "Extra Large (5000+)"},
}

// Session duration phrases to minutes.
var durationMappings = map[string]int{
	"15 min":     15,
	"15 minutes": 15,
	"lightning":  15,
	"ted talk":   18,
	"tedx":       18,
	"20 min":     20,
	"20 minutes": 20,
	"30 min":     30,
	"30 minutes": 30,
	"half hour":  30,
	"45 min":     45,
	"45 minutes": 45,
	"60 min":     60,
	"60 minutes": 60,
	"1 hour":     60,
	"one hour":   60,
	"90 min":     90,
	"90 minutes": 90,
	"1.5 hours":  90,
	"2 hours":    120,
	"two hours":  120,
	"half day":   240,
	"full day":   480,
	"multi-day":  960,
}

var durationKeyOrder = []string{
	"15 minutes", "15 min", "lightning", "ted talk", "tedx",
	"20 minutes", "20 min", "30 minutes", "30 min", "half hour",
	"45 minutes", "45 min", "60 minutes", "60 min", "one hour",
	"90 minutes", "90 min", "1.5 hours", "1 hour",
	"two hours", "2 hours", "half day", "full day", "multi-day",
}
