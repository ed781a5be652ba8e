package normalizer

// Expertise taxonomy: category id -> keyword list, grouped under nine parent
// categories. Keyword order matters for containment matching.

var expertiseParents = map[string]string{
	"technology":         "Technology & Innovation",
	"business":           "Business & Management",
	"health_sciences":    "Healthcare & Life Sciences",
	"stem":               "Science & Engineering",
	"legal_policy":       "Law & Policy",
	"creative":           "Creative & Media",
	"education_research": "Education & Research",
	"social":             "Social Impact",
	"personal":           "Personal Development",
}

type expertiseCategory struct {
	parent  string
	display string
}

var expertiseCategories = map[string]expertiseCategory{
	"artificial_intelligence": {"technology", "Artificial Intelligence & Machine Learning"},
	"data_science":            {"technology", "Data Science & Analytics"},
	"software_development":    {"technology", "Software Development"},
	"cybersecurity":           {"technology", "Cybersecurity & Information Security"},
	"cloud_infrastructure":    {"technology", "Cloud Computing & Infrastructure"},
	"emerging_tech":           {"technology", "Emerging Technologies"},
	"leadership":              {"business", "Leadership & Management"},
	"entrepreneurship":        {"business", "Entrepreneurship & Innovation"},
	"marketing":               {"business", "Marketing & Branding"},
	"sales":                   {"business", "Sales & Business Development"},
	"finance":                 {"business", "Finance & Investment"},
	"strategy":                {"business", "Strategy & Consulting"},
	"human_resources":         {"business", "Human Resources & Culture"},
	"healthcare":              {"health_sciences", "Healthcare & Medicine"},
	"biotechnology":           {"health_sciences", "Biotechnology & Pharmaceuticals"},
	"public_health":           {"health_sciences", "Public Health & Policy"},
	"wellness":                {"health_sciences", "Mental Health & Wellness"},
	"engineering":             {"stem", "Engineering"},
	"physical_sciences":       {"stem", "Physical Sciences"},
	"life_sciences":           {"stem", "Life Sciences"},
	"mathematics":             {"stem", "Mathematics & Statistics"},
	"law":                     {"legal_policy", "Law & Legal"},
	"policy":                  {"legal_policy", "Policy & Government"},
	"media":                   {"creative", "Media & Entertainment"},
	"design":                  {"creative", "Design & Creative"},
	"arts":                    {"creative", "Arts & Performance"},
	"writing":                 {"creative", "Writing & Publishing"},
	"education":               {"education_research", "Education & Teaching"},
	"research":                {"education_research", "Research & Academia"},
	"social_impact":           {"social", "Social Impact & Sustainability"},
	"diversity_inclusion":     {"social", "Diversity & Inclusion"},
	"personal_development":    {"personal", "Personal Development"},
	"communication":           {"personal", "Communication & Speaking"},
}

// expertiseCategoryOrder fixes iteration order for the containment pass.
var expertiseCategoryOrder = []string{
	"artificial_intelligence", "data_science", "software_development",
	"cybersecurity", "cloud_infrastructure", "emerging_tech",
	"leadership", "entrepreneurship", "marketing", "sales", "finance",
	"strategy", "human_resources",
	"healthcare", "biotechnology", "public_health", "wellness",
	"engineering", "physical_sciences", "life_sciences", "mathematics",
	"law", "policy",
	"media", "design", "arts", "writing",
	"education", "research",
	"social_impact", "diversity_inclusion",
	"personal_development", "communication",
}

var expertiseKeywords = map[string][]string{
	"artificial_intelligence": {
		"ai", "artificial intelligence", "machine learning", "deep learning",
		"neural network", "ml", "reinforcement learning", "nlp",
		"natural language processing", "computer vision", "chatbot", "llm",
		"generative ai", "predictive modeling", "pattern recognition",
	},
	"data_science": {
		"data science", "data analytics", "big data", "data mining",
		"data analysis", "business intelligence", "predictive analytics",
		"statistics", "data visualization", "data engineering", "etl",
		"data warehouse", "tableau", "power bi", "sql",
	},
	"software_development": {
		"software", "programming", "coding", "software development",
		"web development", "mobile development", "app development",
		"full stack", "backend", "frontend", "agile", "scrum", "devops",
		"javascript", "python", "java", "react", "node.js",
	},
	"cybersecurity": {
		"cybersecurity", "security", "information security", "network security",
		"data security", "privacy", "encryption", "ethical hacking",
		"penetration testing", "compliance", "risk management",
		"incident response", "soc", "ciso",
	},
	"cloud_infrastructure": {
		"cloud", "cloud computing", "aws", "azure", "google cloud", "gcp",
		"infrastructure", "saas", "paas", "iaas", "kubernetes", "docker",
		"microservices", "serverless", "cloud migration", "hybrid cloud",
	},
	"emerging_tech": {
		"blockchain", "cryptocurrency", "bitcoin", "ethereum", "defi", "web3",
		"nft", "metaverse", "iot", "internet of things", "embedded systems",
		"quantum computing", "augmented reality", "virtual reality", "ar", "vr",
	},
	"leadership": {
		"leadership", "management", "executive", "ceo", "team building",
		"organizational", "team leadership", "servant leadership",
		"executive leadership", "leading", "manager", "director", "vp",
		"c-suite", "board",
	},
	"entrepreneurship": {
		"entrepreneur", "startup", "founder", "business development", "venture",
		"innovation", "business growth", "small business", "solopreneur",
		"business owner", "scale", "pivot", "lean startup", "mvp",
	},
	"marketing": {
		"marketing", "digital marketing", "social media", "branding",
		"advertising", "content marketing", "seo", "growth hacking",
		"brand strategy", "pr", "public relations", "influencer",
		"email marketing", "ppc", "sem",
	},
	"sales": {
		"sales", "selling", "revenue", "customer acquisition", "b2b", "b2c",
		"sales strategy", "negotiation", "closing", "pipeline", "crm",
		"account management", "business development", "lead generation",
	},
	"finance": {
		"finance", "investment", "banking", "fintech", "accounting",
		"economics", "financial planning", "wealth management",
		"private equity", "venture capital", "cfo", "treasury",
		"financial analysis", "budgeting", "forex", "trading",
	},
	"strategy": {
		"strategy", "business strategy", "strategic planning", "consulting",
		"transformation", "change management", "operations",
		"process improvement", "efficiency", "optimization", "restructuring",
		"turnaround",
	},
	"human_resources": {
		"hr", "human resources", "talent", "recruitment", "hiring", "people",
		"culture", "employee engagement", "retention", "compensation",
		"benefits", "diversity", "inclusion", "dei", "workplace",
		"organizational development",
	},
	"healthcare": {
		"healthcare", "medical", "medicine", "clinical", "patient care",
		"telemedicine", "hospital", "physician", "doctor", "nurse", "nursing",
		"health system", "healthcare delivery", "patient experience",
	},
	"biotechnology": {
		"biotech", "biotechnology", "genomics", "bioinformatics",
		"molecular biology", "genetics", "crispr", "drug discovery",
		"pharmaceutical", "pharma", "clinical trials", "fda", "therapeutics",
		"diagnostics",
	},
	"public_health": {
		"public health", "epidemiology", "health policy", "global health",
		"pandemic", "disease prevention", "community health", "health equity",
		"vaccination", "health education", "population health",
	},
	"wellness": {
		"wellness", "mental health", "psychology", "psychiatry", "mindfulness",
		"therapy", "counseling", "stress", "anxiety", "depression",
		"wellbeing", "meditation", "yoga", "fitness", "nutrition",
		"holistic health",
	},
	"engineering": {
		"engineering", "mechanical", "electrical", "civil", "chemical",
		"aerospace", "biomedical", "environmental", "industrial",
		"systems engineering", "robotics", "automation", "manufacturing",
		"3d printing", "cad",
	},
	"physical_sciences": {
		"physics", "chemistry", "materials science", "nanotechnology",
		"polymer", "quantum", "astrophysics", "particle physics",
		"theoretical physics", "astronomy", "geology", "earth science",
		"climate science",
	},
	"life_sciences": {
		"biology", "molecular biology", "cell biology", "ecology", "evolution",
		"microbiology", "immunology", "neuroscience", "biochemistry",
		"marine biology", "botany", "zoology", "conservation",
	},
	"mathematics": {
		"mathematics", "math", "statistics", "algorithms", "computational",
		"applied math", "pure math", "probability", "calculus", "algebra",
		"geometry", "topology", "number theory", "combinatorics",
	},
	"law": {
		"law", "legal", "attorney", "litigation", "corporate law",
		"intellectual property", "patent", "trademark", "copyright",
		"compliance", "regulation", "contract", "employment law",
		"securities", "tax law", "criminal law", "constitutional law",
	},
	"policy": {
		"policy", "public policy", "government", "politics", "diplomacy",
		"international relations", "foreign policy", "legislative",
		"regulatory", "advocacy", "lobbying", "think tank", "ngo", "nonprofit",
	},
	"media": {
		"media", "journalism", "broadcasting", "film", "television",
		"production", "documentary", "news", "reporter", "anchor", "producer",
		"director", "cinematography", "editing", "multimedia", "podcast",
	},
	"design": {
		"design", "ux", "ui", "graphic design", "product design",
		"architecture", "interior design", "fashion", "industrial design",
		"web design", "user experience", "user interface", "visual design",
		"branding design",
	},
	"arts": {
		"art", "music", "theater", "performance", "creative", "entertainment",
		"artist", "musician", "actor", "dancer", "singer", "composer",
		"painting", "sculpture", "photography", "gallery", "museum",
	},
	"writing": {
		"writing", "author", "content creation", "copywriting", "publishing",
		"novelist", "poet", "screenwriter", "blogger", "editor", "literary",
		"book", "manuscript", "storytelling", "narrative",
	},
	"education": {
		"education", "teaching", "learning", "training", "curriculum",
		"e-learning", "instructional design", "academic", "professor",
		"teacher", "educator", "pedagogy", "k-12", "higher education",
		"university", "school",
	},
	"research": {
		"research", "researcher", "scientist", "scholar", "phd", "postdoc",
		"grant", "publication", "peer review", "methodology", "study",
		"experiment", "analysis", "findings", "hypothesis",
	},
	"social_impact": {
		"social impact", "nonprofit", "charity", "philanthropy",
		"social enterprise", "community", "volunteer", "humanitarian",
		"development", "sustainability", "environment", "climate", "green",
		"eco", "conservation", "renewable",
	},
	"diversity_inclusion": {
		"diversity", "inclusion", "dei", "equity", "equality", "bias",
		"gender", "race", "lgbtq", "accessibility", "belonging",
		"multicultural", "intersectionality", "allyship",
	},
	"personal_development": {
		"motivation", "inspiration", "resilience", "mindset", "growth",
		"self improvement", "personal growth", "life coach", "success",
		"goal setting", "productivity", "time management", "habits",
	},
	"communication": {
		"communication", "public speaking", "presentation", "storytelling",
		"speech", "rhetoric", "persuasion", "influence", "negotiation",
		"interpersonal", "listening", "conflict resolution",
	},
}
