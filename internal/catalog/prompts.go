package catalog

// prompts are the audit queries issued per category. The mix matters:
// category-level "best X" queries, comparison queries, and purchase-advice
// queries each exercise a different kind of AI answer, and the gap analysis
// classifies misses by the same phrasing.
var prompts = map[string][]string{
	"beauty": {
		"What are the best Indian skincare brands?",
		"Which affordable skincare brands in India actually work?",
		"Best natural and organic beauty brands in India",
		"Mamaearth vs mCaffeine - which is better for skincare?",
		"Compare Sugar Cosmetics and Nykaa's own brand products",
		"Should I buy Minimalist or Plum for sensitive skin?",
		"Which Indian brand makes the best face wash?",
		"Recommend a good vitamin C serum from an Indian brand",
		"Top D2C beauty brands in India right now",
		"What skincare brands do dermatologists in India recommend?",
		"Best Indian makeup brands for everyday use",
		"Which sunscreen brand should I choose in India?",
		"Are Indian ayurvedic beauty brands like Forest Essentials worth it?",
		"Best budget-friendly skincare routine with Indian products",
		"Which Indian beauty brand has the best reviews?",
	},
	"food": {
		"What are the best D2C food brands in India?",
		"Best healthy snack brands in India",
		"Licious vs Country Delight - which delivers better quality?",
		"Compare Vahdam and Blue Tokai for premium beverages",
		"Should I subscribe to Country Delight for milk delivery?",
		"Which Indian brand makes the best protein bars?",
		"Recommend a good cold-pressed juice brand in India",
		"Top organic food brands in India",
		"What are the best breakfast cereal brands for kids in India?",
		"Which Greek yogurt brand is best in India?",
		"Best Indian tea brands to gift",
		"Is Slurrp Farm good for children's nutrition?",
		"Which millet-based food brands should I try in India?",
		"Best fresh meat delivery services in India",
		"Which Indian food brand has the cleanest ingredient labels?",
	},
	"health": {
		"What are the best supplement brands in India?",
		"Best whey protein brands in India",
		"MuscleBlaze vs HealthKart - which protein is better?",
		"Compare OZiva and Plix plant-based supplements",
		"Should I buy Kapiva ayurvedic supplements?",
		"Which Indian brand makes the best multivitamins?",
		"Recommend a good fish oil supplement available in India",
		"Top wellness brands for women's health in India",
		"What are the most trusted nutrition brands in India?",
		"Which collagen supplement should I choose in India?",
		"Best ayurvedic wellness brands in India",
		"Is Boldfit good for gym supplements?",
		"Which Indian brand has the best electrolyte drinks?",
		"Best sleep and stress supplements in India",
		"Which health supplement brands do doctors in India trust?",
	},
	"fashion": {
		"What are the best D2C fashion brands in India?",
		"Best streetwear brands in India",
		"Bewakoof vs The Souled Store - which has better quality?",
		"Compare Snitch and Rare Rabbit for men's fashion",
		"Should I buy from Urbanic or a local Indian brand?",
		"Which Indian brand makes the best plain t-shirts?",
		"Recommend a good sustainable fashion brand in India",
		"Top men's fashion brands in India right now",
		"What are the best online clothing brands for women in India?",
		"Which Indian innerwear brand is best for men?",
		"Best affordable workwear brands in India",
		"Is Virgio actually sustainable?",
		"Which Indian fashion brand fits best for a slim build?",
		"Best oversized t-shirt brands in India",
		"Which Indian clothing brand has the best return policy?",
	},
	"electronics": {
		"What are the best Indian audio brands?",
		"Best budget earbuds brands in India",
		"boAt vs Noise - which makes better smartwatches?",
		"Compare Fire-Boltt and Noise smartwatches",
		"Should I buy boAt or OnePlus earbuds?",
		"Which Indian brand makes the best power banks?",
		"Recommend a good budget smartwatch in India",
		"Top wearable brands in India right now",
		"What are the best neckband earphones in India?",
		"Which Indian brand has the best soundbars?",
		"Best gaming accessories brands in India",
		"Is Portronics good for charging accessories?",
		"Which budget audio brand has the best warranty in India?",
		"Best TWS earbuds under 2000 rupees in India",
		"Which Indian electronics brand has the best service network?",
	},
	"baby": {
		"What are the best baby care brands in India?",
		"Best natural baby skincare brands in India",
		"Mamaearth Baby vs Himalaya Baby - which is safer?",
		"Compare The Moms Co and Johnsons Baby products",
		"Should I buy baby products from FirstCry or a pharmacy?",
		"Which Indian brand makes the best baby lotion?",
		"Recommend a good diaper rash cream available in India",
		"Top toxin-free baby brands in India",
		"What are the most trusted baby food brands in India?",
		"Which baby shampoo should I choose in India?",
		"Best baby clothing brands in India",
		"Is Chicco worth the premium price in India?",
		"Which Indian baby brand do pediatricians recommend?",
		"Best baby massage oil brands in India",
		"Which baby care brand has the safest ingredients?",
	},
	"home": {
		"What are the best mattress brands in India?",
		"Best online furniture brands in India",
		"Wakefit vs The Sleep Company - which mattress is better?",
		"Compare Duroflex and Sleepyhead mattresses",
		"Should I buy a mattress from Wakefit or a local store?",
		"Which Indian brand makes the best memory foam mattress?",
		"Recommend a good ergonomic office chair brand in India",
		"Top home decor brands in India",
		"What are the best bed frame brands in India?",
		"Which sofa brand is best for small apartments in India?",
		"Best pillow brands for neck pain in India",
		"Is Pepperfry furniture good quality?",
		"Which Indian mattress brand has the best trial period?",
		"Best affordable home furnishing brands in India",
		"Which Indian furniture brand has the best delivery experience?",
	},
	"pet": {
		"What are the best pet food brands in India?",
		"Best dog food brands available in India",
		"Drools vs Pedigree - which is better for dogs?",
		"Compare Royal Canin and Drools for puppies",
		"Should I buy pet supplies from Supertails or a local store?",
		"Which Indian brand makes the best cat food?",
		"Recommend a good grain-free dog food in India",
		"Top pet care brands in India right now",
		"What are the best pet grooming brands in India?",
		"Which online pet store is best in India?",
		"Best pet treat brands in India",
		"Is Heads Up For Tails worth the price?",
		"Which pet food brand do vets in India recommend?",
		"Best fresh pet food delivery services in India",
		"Which Indian pet brand has the best customer support?",
	},
}

// Prompts returns the audit query set for a category. Unknown categories
// return nil; callers validate the category before building a run.
func Prompts(category string) []string {
	return prompts[category]
}
