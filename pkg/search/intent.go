package search

import "strings"

// Classifier decides which catalogs a query targets. The decision table is
// ordered: egg-only signals beat livestock-only signals, ambiguous poultry
// words mean both, and a query with no signal at all searches both.
type Classifier struct {
	eggOnly       []string
	livestockOnly []string
	poultry       []string
}

func NewClassifier() *Classifier {
	return &Classifier{
		eggOnly: []string{
			"egg", "eggs", "crate", "crates", "tray", "trays", "dozen",
			"hatching", "yolk", "shell", "omelette", "omelet",
			"incubation", "incubator", "fertilized",
		},
		livestockOnly: []string{
			"cattle", "cow", "cows", "bull", "bulls", "calf", "calves",
			"heifer", "ox", "oxen", "beef", "dairy",
			"goat", "goats", "buck", "doe", "billy", "nanny",
			"sheep", "ram", "rams", "ewe", "ewes", "lamb", "lambs", "mutton",
			"pig", "pigs", "swine", "hog", "hogs", "piglet", "boar", "sow",
			"pork", "livestock",
		},
		poultry: []string{
			"chicken", "chickens", "hen", "hens", "rooster", "cockerel",
			"turkey", "turkeys", "duck", "ducks", "quail", "quails",
			"guinea", "fowl", "broiler", "broilers", "layer", "layers",
			"poultry", "bird", "birds",
		},
	}
}

// Classify is total: every query maps to an Intent and the result is never
// both-false.
func (c *Classifier) Classify(query string) Intent {
	lowered := strings.ToLower(query)
	tokens := tokenRe.FindAllString(lowered, -1)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	for _, kw := range c.eggOnly {
		if tokenSet[kw] {
			return Intent{SearchLivestock: false, SearchEggs: true}
		}
	}
	for _, kw := range c.livestockOnly {
		if tokenSet[kw] {
			return Intent{SearchLivestock: true, SearchEggs: false}
		}
	}
	for _, kw := range c.poultry {
		if tokenSet[kw] {
			return Intent{SearchLivestock: true, SearchEggs: true}
		}
	}

	return Intent{SearchLivestock: true, SearchEggs: true}
}
