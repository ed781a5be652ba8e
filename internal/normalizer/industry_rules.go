package normalizer

// Industry taxonomy: industry id -> keyword list plus subcategory tags.

type industryEntry struct {
	display       string
	subcategories []string
}

var industries = map[string]industryEntry{
	"healthcare":            {"Healthcare & Life Sciences", []string{"hospitals", "pharmaceuticals", "biotechnology", "medical_devices", "digital_health"}},
	"technology":            {"Technology & Software", []string{"software", "hardware", "saas", "fintech", "cybersecurity"}},
	"finance":               {"Financial Services", []string{"banking", "investment", "insurance", "fintech", "real_estate"}},
	"manufacturing":         {"Manufacturing & Industrial", []string{"automotive", "aerospace", "chemicals", "machinery", "logistics"}},
	"retail":                {"Retail & E-commerce", []string{"ecommerce", "brick_mortar", "fashion", "grocery", "hospitality"}},
	"education":             {"Education & Academia", []string{"k12", "higher_ed", "edtech", "training", "research"}},
	"government":            {"Government & Public Sector", []string{"federal", "state_local", "military", "nonprofit", "international"}},
	"media":                 {"Media & Entertainment", []string{"broadcast", "publishing", "digital_media", "advertising", "gaming"}},
	"energy":                {"Energy & Utilities", []string{"oil_gas", "renewable", "utilities", "mining", "environmental"}},
	"professional_services": {"Professional Services", []string{"consulting", "legal", "accounting", "hr_services", "real_estate"}},
	"telecommunications":    {"Telecommunications", []string{"wireless", "broadband", "infrastructure", "satellite"}},
	"transportation":        {"Transportation & Logistics", []string{"aviation", "ground_transport", "maritime", "logistics", "delivery"}},
	"agriculture":           {"Agriculture & Food", []string{"farming", "agtech", "food_processing", "sustainability"}},
	"construction":          {"Construction & Real Estate", []string{"commercial", "residential", "infrastructure", "architecture"}},
	"pharmaceutical":        {"Pharmaceuticals", []string{"research", "manufacturing", "distribution", "clinical_trials"}},
}

var industryOrder = []string{
	"healthcare", "technology", "finance", "manufacturing", "retail",
	"education", "government", "media", "energy", "professional_services",
	"telecommunications", "transportation", "agriculture", "construction",
	"pharmaceutical",
}

var industryKeywords = map[string][]string{
	"healthcare": {
		"healthcare", "medical", "medicine", "health care", "hospital",
		"clinical", "patient care", "health system", "nursing", "pharma",
		"pharmaceutical", "biotech", "biotechnology", "life sciences",
		"health services", "wellness", "mental health", "public health",
		"telemedicine", "digital health", "medtech", "medical device",
	},
	"technology": {
		"technology", "tech", "it", "information technology", "software",
		"hardware", "computer", "digital", "internet", "web", "mobile",
		"app", "saas", "cloud", "data", "ai", "artificial intelligence",
		"machine learning", "cybersecurity", "fintech", "edtech", "martech",
	},
	"finance": {
		"finance", "financial", "banking", "bank", "investment", "insurance",
		"finserv", "financial services", "wealth management",
		"asset management", "private equity", "venture capital", "hedge fund",
		"trading", "capital markets", "payments", "lending", "credit",
		"mortgage", "real estate finance",
	},
	"manufacturing": {
		"manufacturing", "industrial", "factory", "production", "assembly",
		"automotive", "aerospace", "defense", "chemicals", "materials",
		"supply chain", "logistics", "distribution", "warehouse",
		"operations", "lean", "six sigma", "quality", "engineering",
		"machinery",
	},
	"retail": {
		"retail", "ecommerce", "e-commerce", "online retail", "store",
		"shopping", "consumer goods", "cpg", "fmcg", "fashion", "apparel",
		"grocery", "restaurant", "hospitality", "food service", "qsr",
		"customer experience", "omnichannel", "marketplace",
	},
	"education": {
		"education", "academic", "university", "college", "school", "k-12",
		"k12", "higher education", "edtech", "e-learning", "online education",
		"training", "professional development", "curriculum", "teaching",
		"student", "research", "library", "educational technology",
	},
	"government": {
		"government", "federal", "state", "local", "municipal",
		"public sector", "public service", "military", "defense",
		"intelligence", "policy", "regulation", "compliance", "politics",
		"political", "diplomatic", "international relations", "ngo",
		"nonprofit", "non-profit",
	},
	"media": {
		"media", "entertainment", "broadcast", "television", "tv", "film",
		"movie", "music", "publishing", "news", "journalism", "advertising",
		"marketing", "pr", "public relations", "digital media",
		"social media", "content", "streaming", "gaming", "sports",
		"creative",
	},
	"energy": {
		"energy", "oil", "gas", "petroleum", "renewable", "solar", "wind",
		"utilities", "power", "electricity", "nuclear", "coal", "natural gas",
		"sustainability", "clean energy", "green energy", "environmental",
		"climate", "carbon", "emissions", "mining", "resources",
	},
	"professional_services": {
		"consulting", "professional services", "legal", "law", "accounting",
		"audit", "tax", "advisory", "management consulting",
		"strategy consulting", "hr", "human resources", "recruiting",
		"staffing", "real estate", "architecture", "engineering services",
		"design",
	},
	"telecommunications": {
		"telecom", "telecommunications", "wireless", "mobile", "5g",
		"broadband", "cable", "satellite", "network", "carrier", "isp",
		"internet service", "communication", "connectivity", "infrastructure",
	},
	"transportation": {
		"transportation", "transport", "logistics", "shipping", "freight",
		"airline", "aviation", "rail", "railroad", "trucking", "maritime",
		"delivery", "courier", "postal", "mobility", "autonomous", "vehicle",
	},
	"agriculture": {
		"agriculture", "farming", "agtech", "agribusiness", "food production",
		"crop", "livestock", "dairy", "ranch", "agricultural technology",
		"precision farming", "sustainable agriculture", "organic",
		"food processing",
	},
	"construction": {
		"construction", "building", "contractor", "architecture",
		"engineering", "real estate development", "infrastructure",
		"civil engineering", "commercial construction",
		"residential construction", "heavy construction",
	},
	"pharmaceutical": {
		"pharmaceutical", "pharma", "drug", "medication", "clinical trial",
		"fda", "regulatory", "drug development", "biopharmaceutical",
		"generic", "specialty pharma", "vaccine", "therapeutic",
	},
}
