package normalizer

// Degree abbreviation variants to canonical short forms.

var degreeMappings = map[string]string{
	// Doctoral
	"phd":                  "PhD",
	"ph.d.":                "PhD",
	"ph.d":                 "PhD",
	"doctor of philosophy": "PhD",
	"dphil":                "DPhil",
	"d.phil":               "DPhil",
	"edd":                  "EdD",
	"ed.d.":                "EdD",
	"doctor of education":  "EdD",
	"md":                   "MD",
	"m.d.":                 "MD",
	"doctor of medicine":   "MD",
	"jd":                   "JD",
	"j.d.":                 "JD",
	"juris doctor":         "JD",
	"dba":                  "DBA",
	"d.b.a.":               "DBA",
	"doctor of business administration": "DBA",
	"psyd":                 "PsyD",
	"psy.d.":               "PsyD",
	"doctor of psychology": "PsyD",
	"dsc":                  "DSc",
	"d.sc.":                "DSc",
	"doctor of science":    "DSc",

	// Master's
	"mba":                              "MBA",
	"m.b.a.":                           "MBA",
	"master of business administration": "MBA",
	"ms":                               "MS",
	"m.s.":                             "MS",
	"master of science":                "MS",
	"msc":                              "MSc",
	"m.sc.":                            "MSc",
	"ma":                               "MA",
	"m.a.":                             "MA",
	"master of arts":                   "MA",
	"med":                              "MEd",
	"m.ed.":                            "MEd",
	"master of education":              "MEd",
	"meng":                             "MEng",
	"m.eng.":                           "MEng",
	"master of engineering":            "MEng",
	"mph":                              "MPH",
	"m.p.h.":                           "MPH",
	"master of public health":          "MPH",
	"mpa":                              "MPA",
	"m.p.a.":                           "MPA",
	"master of public administration":  "MPA",
	"mfa":                              "MFA",
	"m.f.a.":                           "MFA",
	"master of fine arts":              "MFA",
	"llm":                              "LLM",
	"ll.m.":                            "LLM",
	"master of laws":                   "LLM",
	"msw":                              "MSW",
	"m.s.w.":                           "MSW",
	"master of social work":            "MSW",

	// Bachelor's
	"ba":                                 "BA",
	"b.a.":                               "BA",
	"bachelor of arts":                   "BA",
	"bs":                                 "BS",
	"b.s.":                               "BS",
	"bachelor of science":                "BS",
	"bsc":                                "BSc",
	"b.sc.":                              "BSc",
	"beng":                               "BEng",
	"b.eng.":                             "BEng",
	"bachelor of engineering":            "BEng",
	"bba":                                "BBA",
	"b.b.a.":                             "BBA",
	"bachelor of business administration": "BBA",
	"bed":                                "BEd",
	"b.ed.":                              "BEd",
	"bachelor of education":              "BEd",
	"llb":                                "LLB",
	"ll.b.":                              "LLB",
	"bachelor of laws":                   "LLB",
	"bfa":                                "BFA",
	"b.f.a.":                             "BFA",
	"bachelor of fine arts":              "BFA",
}

// Numeric degree levels, used for sorting: doctoral 5 down to high school 1.
var degreeLevels = map[string]int{
	"PhD": 5, "DPhil": 5, "EdD": 5, "MD": 5, "JD": 5, "DBA": 5, "PsyD": 5, "DSc": 5,
	"MBA": 4, "MS": 4, "MSc": 4, "MA": 4, "MEd": 4, "MEng": 4, "MPH": 4, "MPA": 4,
	"MFA": 4, "LLM": 4, "MSW": 4,
	"BA": 3, "BS": 3, "BSc": 3, "BEng": 3, "BBA": 3, "BEd": 3, "LLB": 3, "BFA": 3,
	"AA": 2, "AS": 2,
	"HS": 1,
}

// degreeKeyOrder fixes the containment scan order: doctoral degrees before
// master's before bachelor's, long forms alongside their abbreviations, so
// "mba" is never claimed by the shorter "ba".
var degreeKeyOrder = []string{
	"phd", "ph.d.", "ph.d", "doctor of philosophy", "dphil", "d.phil",
	"edd", "ed.d.", "doctor of education", "md", "m.d.",
	"doctor of medicine", "jd", "j.d.", "juris doctor", "dba", "d.b.a.",
	"doctor of business administration", "psyd", "psy.d.",
	"doctor of psychology", "dsc", "d.sc.", "doctor of science",
	"mba", "m.b.a.", "master of business administration",
	"ms", "m.s.", "master of science", "msc", "m.sc.",
	"ma", "m.a.", "master of arts", "med", "m.ed.", "master of education",
	"meng", "m.eng.", "master of engineering", "mph", "m.p.h.",
	"master of public health", "mpa", "m.p.a.",
	"master of public administration", "mfa", "m.f.a.",
	"master of fine arts", "llm", "ll.m.", "master of laws",
	"msw", "m.s.w.", "master of social work",
	"ba", "b.a.", "bachelor of arts", "bs", "b.s.", "bachelor of science",
	"bsc", "b.sc.", "beng", "b.eng.", "bachelor of engineering",
	"bba", "b.b.a.", "bachelor of business administration",
	"bed", "b.ed.", "bachelor of education", "llb", "ll.b.",
	"bachelor of laws", "bfa", "b.f.a.", "bachelor of fine arts",
}

var certificationMappings = map[string]string{
	// Project management
	"pmp":                             "PMP",
	"project management professional": "PMP",
	"prince2":                         "PRINCE2",
	"prince 2":                        "PRINCE2",
	"capm":                            "CAPM",
	"agile":                           "Agile",
	"scrum master":                    "CSM",
	"csm":                             "CSM",
	"psm":                             "PSM",
	"safe":                            "SAFe",

	// IT / security
	"cissp":                  "CISSP",
	"cisa":                   "CISA",
	"cism":                   "CISM",
	"ccna":                   "CCNA",
	"ccnp":                   "CCNP",
	"ccie":                   "CCIE",
	"mcse":                   "MCSE",
	"mcsa":                   "MCSA",
	"aws certified":          "AWS",
	"aws solutions architect": "AWS-SA",
	"azure":                  "Azure",
	"gcp":                    "GCP",
	"comptia":                "CompTIA",
	"ceh":                    "CEH",
	"oscp":                   "OSCP",

	// Finance / accounting
	"cpa":                          "CPA",
	"c.p.a.":                       "CPA",
	"certified public accountant":  "CPA",
	"cfa":                          "CFA",
	"c.f.a.":                       "CFA",
	"chartered financial analyst":  "CFA",
	"frm":                          "FRM",
	"cma":                          "CMA",
	"certified management accountant": "CMA",
	"cia":                          "CIA",
	"certified internal auditor":   "CIA",
	"acca":                         "ACCA",
	"caia":                         "CAIA",

	// Quality / process
	"six sigma":  "Six Sigma",
	"black belt": "Six Sigma Black Belt",
	"green belt": "Six Sigma Green Belt",
	"lean":       "Lean",
	"iso":        "ISO",

	// HR
	"shrm":     "SHRM",
	"shrm-cp":  "SHRM-CP",
	"shrm-scp": "SHRM-SCP",
	"phr":      "PHR",
	"sphr":     "SPHR",
	"gphr":     "GPHR",

	// Medical
	"board certified": "Board Certified",
	"bcps":            "BCPS",
	"facc":            "FACC",
	"facs":            "FACS",
	"facep":           "FACEP",

	// Speaking
	"csp":                            "CSP",
	"certified speaking professional": "CSP",
	"cpae":                           "CPAE",
	"dtm":                            "DTM",
	"distinguished toastmaster":      "DTM",
}

var certificationKeyOrder = []string{
	"pmp", "project management professional", "prince2", "prince 2", "capm",
	"agile", "scrum master", "csm", "psm", "safe",
	"cissp", "cisa", "cism", "ccna", "ccnp", "ccie", "mcse", "mcsa",
	"aws certified", "aws solutions architect", "azure", "gcp", "comptia",
	"ceh", "oscp",
	"cpa", "c.p.a.", "certified public accountant", "cfa", "c.f.a.",
	"chartered financial analyst", "frm", "cma",
	"certified management accountant", "cia", "certified internal auditor",
	"acca", "caia",
	"six sigma", "black belt", "green belt", "lean", "iso",
	"shrm", "shrm-cp", "shrm-scp", "phr", "sphr", "gphr",
	"board certified", "bcps", "facc", "facs", "facep",
	"csp", "certified speaking professional", "cpae", "dtm",
	"distinguished toastmaster",
}

var awardCategories = map[string]string{
	"nobel":        "Nobel Prize",
	"pulitzer":     "Pulitzer Prize",
	"emmy":         "Emmy Award",
	"grammy":       "Grammy Award",
	"oscar":        "Academy Award",
	"tony":         "Tony Award",
	"forbes":       "Forbes Recognition",
	"ted":          "TED",
	"tedx":         "TEDx",
	"bestseller":   "Bestselling Author",
	"inc":          "Inc. Magazine",
	"entrepreneur": "Entrepreneur Magazine",
	"fast company": "Fast Company",
	"40 under 40":  "40 Under 40",
	"30 under 30":  "30 Under 30",
	"macarthur":    "MacArthur Fellowship",
	"csp":          "CSP",
	"cpae":         "CPAE",
	"dtm":          "DTM",
}

var awardKeyOrder = []string{
	"nobel", "pulitzer", "macarthur", "emmy", "grammy", "oscar", "tony",
	"forbes", "tedx", "ted", "bestseller", "inc", "entrepreneur",
	"fast company", "40 under 40", "30 under 30", "csp", "cpae", "dtm",
}

// Award prestige buckets.
var prestigiousAwards = map[string]bool{
	"Nobel Prize":           true,
	"Pulitzer Prize":        true,
	"MacArthur Fellowship":  true,
}

var speakerAwards = map[string]bool{
	"CSP":  true,
	"CPAE": true,
	"DTM":  true,
}

var mediaAwards = map[string]bool{
	"Emmy Award":    true,
	"Grammy Award":  true,
	"Academy Award": true,
	"Tony Award":    true,
}
