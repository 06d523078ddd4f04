package search

import "strings"

// EggExtractor turns free-text egg queries into structured EggCriteria.
// Like Extractor it is deterministic and case-insensitive, but detection is
// first-match-wins per field instead of collect-all.
type EggExtractor struct {
	vocab *EggVocabulary
}

func NewEggExtractor(vocab *EggVocabulary) *EggExtractor {
	return &EggExtractor{vocab: vocab}
}

func (e *EggExtractor) Extract(query string) EggCriteria {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return EggCriteria{}
	}

	criteria := EggCriteria{}
	tokens := tokenRe.FindAllString(lowered, -1)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	// 1. Category slug: first matching bird type wins.
	for _, slug := range e.vocab.CategoryOrder {
		if criteria.CategorySlug != "" {
			break
		}
		for _, kw := range e.vocab.CategoryKeywords[slug] {
			if matchKeyword(lowered, tokenSet, kw) {
				criteria.CategorySlug = slug
				break
			}
		}
	}

	// 2. Egg type: ordered checks, fertilized signals outrank the rest.
	for _, eggType := range e.vocab.EggTypeOrder {
		if criteria.EggType != "" {
			break
		}
		for _, kw := range e.vocab.EggTypeKeywords[eggType] {
			if matchKeyword(lowered, tokenSet, kw) {
				criteria.EggType = eggType
				break
			}
		}
	}

	// 3. Size: the multi-word extra-large phrasings are checked before the
	// bare "large" token so they are not shadowed by it.
	switch {
	case strings.Contains(lowered, "extra large") ||
		strings.Contains(lowered, "extra-large") ||
		tokenSet["jumbo"]:
		criteria.Size = "extra_large"
	case tokenSet["large"] || tokenSet["big"]:
		criteria.Size = "large"
	case tokenSet["medium"]:
		criteria.Size = "medium"
	case tokenSet["small"]:
		criteria.Size = "small"
	}

	// 4. Price ceiling first: packaging inference runs on the query with
	// price expressions removed, so "crates under 30k" cannot bind the
	// 30-crate size from the price amount.
	if maxMatch := maxPriceRe.FindStringSubmatch(lowered); maxMatch != nil {
		if amount, ok := parseAmount(maxMatch[1], maxMatch[2]); ok {
			criteria.MaxPrice = &amount
		}
	}
	criteria.Packaging = detectPackaging(stripPriceExpressions(lowered))

	// 5. Freshness preference.
	for _, kw := range e.vocab.FreshKeywords {
		if tokenSet[kw] {
			criteria.PreferFresh = true
			break
		}
	}

	// 6. Locations, same gazetteer as the livestock extractor.
	for _, place := range e.vocab.Locations {
		if matchKeyword(lowered, tokenSet, place) {
			criteria.Locations = append(criteria.Locations, place)
		}
	}

	return criteria
}

// detectPackaging needs a packaging keyword plus a quantity cue. A crate
// with no cue defaults to the full 30-egg crate, the common trade unit.
func detectPackaging(lowered string) string {
	priceFree := tokenRe.FindAllString(lowered, -1)
	cues := make(map[string]bool, len(priceFree))
	for _, t := range priceFree {
		cues[t] = true
	}

	switch {
	case cues["crate"] || cues["crates"]:
		if cues["15"] || cues["half"] {
			return "half_crate_15"
		}
		return "crate_30"
	case cues["tray"] || cues["trays"]:
		return "tray"
	case cues["single"] || cues["piece"] || cues["pieces"]:
		return "single"
	}
	return ""
}

// TokenizeForFallback splits the raw query into significant words for the
// broad search tier, dropping egg stop words so "eggs" alone does not
// dominate the match.
func (e *EggExtractor) TokenizeForFallback(query string) []string {
	lowered := strings.ToLower(query)
	stop := make(map[string]bool, len(e.vocab.StopWords))
	for _, w := range e.vocab.StopWords {
		stop[w] = true
	}

	var words []string
	for _, tok := range tokenRe.FindAllString(lowered, -1) {
		if len(tok) < 3 || stop[tok] {
			continue
		}
		words = append(words, tok)
	}
	return words
}
