// Package catalog holds the static category registry: the closed set of
// audit categories plus the per-category lookup tables (known competitor
// brands, prompt sets, subreddit and aggregator suggestions). Everything
// here is immutable configuration data built once at startup.
package catalog

// Category is one audit category
type Category struct {
	ID       string
	Label    string
	Examples string
}

// Categories lists every supported category in display order
var Categories = []Category{
	{ID: "beauty", Label: "Beauty & Skincare", Examples: "Mamaearth, mCaffeine, Sugar Cosmetics, Minimalist"},
	{ID: "food", Label: "Food & Beverages", Examples: "Licious, Country Delight, Vahdam, Yogabar"},
	{ID: "health", Label: "Health & Wellness", Examples: "HealthKart, Plix, Kapiva, Wow Skin Science"},
	{ID: "fashion", Label: "Fashion & Apparel", Examples: "Bewakoof, Snitch, The Souled Store, Urbanic"},
	{ID: "electronics", Label: "Electronics & Gadgets", Examples: "boAt, Noise, Fire-Boltt, Portronics"},
	{ID: "baby", Label: "Baby & Kids", Examples: "FirstCry, The Moms Co, Mamaearth Baby"},
	{ID: "home", Label: "Home & Living", Examples: "Wakefit, Sleepyhead, Pepperfry, Urban Ladder"},
	{ID: "pet", Label: "Pet Care", Examples: "Supertails, Heads Up For Tails, Wiggles"},
}

// knownBrands maps each category to its known competitor brands, lowercase
// canonical form. Extraction iterates these in order, so the order is part
// of the contract.
var knownBrands = map[string][]string{
	"beauty":      {"mamaearth", "mcaffeine", "sugar cosmetics", "minimalist", "plum", "nykaa", "wow skin science", "dot & key", "biotique", "lakme", "forest essentials", "kama ayurveda", "the body shop"},
	"food":        {"licious", "country delight", "vahdam", "yogabar", "true elements", "slurrp farm", "raw pressery", "epigamia", "good dot", "blue tokai"},
	"health":      {"healthkart", "plix", "kapiva", "wow skin science", "oziva", "boldfit", "muscleblaze", "fast&up", "wellbeing nutrition", "gynoveda"},
	"fashion":     {"bewakoof", "snitch", "the souled store", "urbanic", "rare rabbit", "bonkers corner", "virgio", "freakins", "nobero", "damensch"},
	"electronics": {"boat", "noise", "fire-boltt", "portronics", "ambrane", "ptron", "realme", "oneplus", "boult audio", "crossbeats"},
	"baby":        {"firstcry", "the moms co", "mamaearth baby", "mothercare", "himalaya baby", "johnsons baby", "chicco", "mee mee"},
	"home":        {"wakefit", "sleepyhead", "pepperfry", "urban ladder", "duroflex", "the sleep company", "flo mattress", "sunday mattress"},
	"pet":         {"supertails", "heads up for tails", "wiggles", "drools", "pedigree", "royal canin", "whiskas", "sheba"},
}

// subreddits maps each category to communities worth building presence in
var subreddits = map[string][]string{
	"beauty":      {"r/IndianSkincareAddicts", "r/IndianMakeupAddicts", "r/SkincareAddiction"},
	"food":        {"r/IndianFood", "r/Cooking", "r/HealthyFood"},
	"health":      {"r/IndianFitness", "r/Supplements", "r/Fitness"},
	"fashion":     {"r/IndianFashionAddicts", "r/malefashionadvice", "r/streetwear"},
	"electronics": {"r/IndianGaming", "r/headphones", "r/gadgets"},
	"baby":        {"r/IndianParenting", "r/beyondthebump", "r/Parenting"},
	"home":        {"r/IndianHomes", "r/HomeDecorating", "r/Mattress"},
	"pet":         {"r/IndianPets", "r/dogs", "r/cats"},
}

// aggregators maps each category to review and listing sites AI models
// pull brand data from
var aggregators = map[string][]string{
	"beauty":      {"Nykaa", "BeautyBargainIndia", "SkinKraft", "Purplle"},
	"food":        {"Zomato", "FoodViva", "TasteAtlas", "YourStory"},
	"health":      {"HealthKart", "Nutrabay", "1mg", "PharmEasy"},
	"fashion":     {"Myntra", "Ajio", "CRED", "Tata CLiQ"},
	"electronics": {"Gadgets360", "MySmartPrice", "GSMArena", "TechPP"},
	"baby":        {"FirstCry", "BabyChakra", "ParentCircle"},
	"home":        {"SleepyOwl", "WoodenStreet", "HomeLane"},
	"pet":         {"Supertails", "PetIndia", "DogSpot"},
}

// contentLabels are the long-form category names used in generated content
var contentLabels = map[string]string{
	"beauty":      "Skincare & Beauty Products",
	"food":        "Food & Beverages",
	"health":      "Health & Wellness Supplements",
	"fashion":     "Fashion Brands",
	"electronics": "Electronics & Gadgets",
	"baby":        "Baby Care Products",
	"home":        "Home & Living Products",
	"pet":         "Pet Care Products",
}

// IsValidCategory reports whether id is a supported category
func IsValidCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// KnownBrands returns the known competitor brands for a category, in the
// fixed extraction order. Unknown categories return nil.
func KnownBrands(category string) []string {
	return knownBrands[category]
}

// Subreddits returns community suggestions for a category, with a generic
// fallback for unknown categories.
func Subreddits(category string) []string {
	if s, ok := subreddits[category]; ok {
		return s
	}
	return []string{"r/india"}
}

// Aggregators returns listing-site suggestions for a category. Unknown
// categories return nil.
func Aggregators(category string) []string {
	return aggregators[category]
}

// ContentLabel returns the long-form label used in generated content,
// falling back to the raw category id.
func ContentLabel(category string) string {
	if l, ok := contentLabels[category]; ok {
		return l
	}
	return category
}
