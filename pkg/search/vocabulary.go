package search

// Vocabulary holds the fixed keyword tables the livestock term extractor
// matches against. It is immutable configuration data: build it once (e.g.
// via DefaultVocabulary) and inject it into NewExtractor.
type Vocabulary struct {
	// CategoryKeywords maps a canonical category tag to the keywords that
	// imply it (e.g. "cattle" -> cow, bull, calf...).
	CategoryKeywords map[string][]string

	// Breeds are matched as substrings, so multi-word breeds work too.
	Breeds []string

	// MaleKeywords are checked before FemaleKeywords; first list with a
	// match wins and at most one gender is ever set.
	MaleKeywords   []string
	FemaleKeywords []string

	QualityTerms []string

	// Locations is the place-name gazetteer shared with the egg extractor.
	Locations []string

	StopWords []string
}

// DefaultVocabulary returns the production keyword tables for the Nigerian
// livestock catalog.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		CategoryKeywords: map[string][]string{
			"cattle": {"cattle", "cow", "cows", "bull", "bulls", "calf", "calves", "heifer", "ox", "oxen", "beef", "dairy"},
			"goats":  {"goat", "goats", "buck", "bucks", "doe", "billy", "nanny"},
			"sheep":  {"sheep", "ram", "rams", "ewe", "ewes", "lamb", "lambs", "mutton"},
			"pigs":   {"pig", "pigs", "swine", "hog", "hogs", "piglet", "piglets", "boar", "sow", "pork"},
			"poultry": {
				"poultry", "chicken", "chickens", "hen", "hens", "rooster", "cockerel",
				"broiler", "broilers", "layer", "layers", "turkey", "turkeys",
				"duck", "ducks", "quail", "quails", "fowl",
			},
		},
		Breeds: []string{
			"boer", "kalahari red", "sahel", "west african dwarf", "kano brown",
			"saanen", "anglo-nubian", "maradi",
			"white fulani", "sokoto gudali", "red bororo", "muturu", "kuri",
			"friesian", "holstein", "jersey", "brahman",
			"yankasa", "balami", "uda", "ouda",
			"large white", "landrace", "duroc",
			"noiler", "kuroiler", "isa brown",
		},
		MaleKeywords:   []string{"male", "buck", "bull", "ram", "billy", "boar", "rooster", "cockerel"},
		FemaleKeywords: []string{"female", "doe", "ewe", "nanny", "heifer", "hen", "sow"},
		QualityTerms: []string{
			"healthy", "vaccinated", "premium", "strong", "fertile", "pregnant",
			"young", "mature", "dewormed", "disease-free", "pedigree",
		},
		Locations: defaultGazetteer(),
		StopWords: []string{
			"a", "an", "the", "i", "me", "my", "we", "our", "you", "your",
			"is", "are", "was", "be", "do", "did", "can", "will",
			"for", "and", "or", "in", "on", "at", "to", "of", "with", "from",
			"want", "need", "needs", "looking", "look", "buy", "buying",
			"sell", "selling", "sale", "find", "get", "show", "give",
			"please", "some", "any", "have", "has", "there", "here",
			"under", "below", "above", "over", "around", "about",
		},
	}
}

// EggVocabulary holds the keyword tables for the egg term extractor.
type EggVocabulary struct {
	// CategoryKeywords maps keywords to the egg category slug they imply.
	// Detection is first-match-wins in CategoryOrder, unlike the livestock
	// extractor which keeps every matching category.
	CategoryKeywords map[string][]string
	CategoryOrder    []string

	// EggTypeKeywords is checked in EggTypeOrder; first match wins.
	EggTypeKeywords map[string][]string
	EggTypeOrder    []string

	FreshKeywords []string

	Locations []string

	// StopWords is applied when tokenizing the raw query for the broad
	// fallback tier, so "eggs" alone does not dominate the match.
	StopWords []string
}

// DefaultEggVocabulary returns the production keyword tables for the egg
// catalog. Slugs follow the seeded egg categories.
func DefaultEggVocabulary() *EggVocabulary {
	return &EggVocabulary{
		CategoryKeywords: map[string][]string{
			"chicken":     {"chicken", "chickens", "hen", "hens", "broiler", "layer"},
			"turkey":      {"turkey", "turkeys"},
			"guinea-fowl": {"guinea"},
			"quail":       {"quail", "quails"},
			"duck":        {"duck", "ducks"},
			"goose":       {"goose", "geese"},
		},
		CategoryOrder: []string{"chicken", "turkey", "guinea-fowl", "quail", "duck", "goose"},
		EggTypeKeywords: map[string][]string{
			"fertilized": {"fertilized", "fertile", "hatching", "incubation", "incubator"},
			"organic":    {"organic"},
			"free_range": {"free range", "free-range", "freerange"},
			"table":      {"table", "eating", "consumption"},
		},
		EggTypeOrder:  []string{"fertilized", "organic", "free_range", "table"},
		FreshKeywords: []string{"fresh", "new", "newly"},
		Locations:     defaultGazetteer(),
		StopWords: []string{
			"egg", "eggs", "a", "an", "the", "i", "want", "need", "buy",
			"for", "and", "or", "in", "of", "with", "some", "any",
			"under", "below", "above", "over", "sale", "price",
		},
	}
}

func defaultGazetteer() []string {
	return []string{
		"lagos", "abuja", "kano", "kaduna", "ibadan", "port harcourt", "jos",
		"sokoto", "maiduguri", "enugu", "benin", "abeokuta", "ilorin",
		"oyo", "ogun", "katsina", "bauchi", "zaria", "onitsha", "aba",
		"calabar", "uyo", "owerri", "warri", "makurdi", "minna", "gombe",
		"yola", "akure", "osogbo",
	}
}
