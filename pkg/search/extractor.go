package search

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// The leading \b keeps "under" from firing inside words like "thunder".
	maxPriceRe = regexp.MustCompile(`\b(?:under|below)\s+(?:ngn\s*|₦\s*)?([0-9][0-9,]*)\s*(k)?\b`)
	minPriceRe = regexp.MustCompile(`\b(?:above|over)\s+(?:ngn\s*|₦\s*)?([0-9][0-9,]*)\s*(k)?\b`)

	tokenRe = regexp.MustCompile(`[a-z0-9]+`)
)

// Extractor turns free-text livestock queries into structured Criteria.
// It is a pure function of the query and the injected vocabulary: the same
// input always yields the same output.
type Extractor struct {
	vocab *Vocabulary
}

func NewExtractor(vocab *Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

// Extract parses the query case-insensitively. An empty or unmatchable
// query yields an empty Criteria, which downstream triggers the broad
// fallback tiers instead of an error.
func (e *Extractor) Extract(query string) Criteria {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return Criteria{}
	}

	criteria := Criteria{}
	tokens := tokenRe.FindAllString(lowered, -1)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	// 1. Categories: every matching category is kept (OR semantics later).
	captured := make(map[string]bool)
	for tag, keywords := range e.vocab.CategoryKeywords {
		for _, kw := range keywords {
			if matchKeyword(lowered, tokenSet, kw) {
				criteria.Categories = append(criteria.Categories, tag)
				captured[kw] = true
			}
		}
	}
	// Map iteration order is random; sort so extraction stays deterministic.
	sort.Strings(criteria.Categories)
	criteria.Categories = dedupe(criteria.Categories)

	// 2. Breeds: substring match so multi-word breeds work.
	for _, breed := range e.vocab.Breeds {
		if strings.Contains(lowered, breed) {
			criteria.Breeds = append(criteria.Breeds, breed)
			for _, t := range tokenRe.FindAllString(breed, -1) {
				captured[t] = true
			}
		}
	}

	// 3. Gender: male keywords take priority, at most one gender is set.
	for _, kw := range e.vocab.MaleKeywords {
		if tokenSet[kw] {
			criteria.Gender = "M"
			break
		}
	}
	if criteria.Gender == "" {
		for _, kw := range e.vocab.FemaleKeywords {
			if tokenSet[kw] {
				criteria.Gender = "F"
				break
			}
		}
	}

	// 4. Quality terms.
	for _, term := range e.vocab.QualityTerms {
		if strings.Contains(lowered, term) {
			criteria.QualityTerms = append(criteria.QualityTerms, term)
			captured[term] = true
		}
	}

	// 5. Price bound. A query matching both an "under" and an "above"
	// pattern is ambiguous, so the bound is dropped rather than letting
	// whichever regex ran last win.
	criteria.PriceBound = extractPriceBound(lowered)

	// 6. Locations.
	locationTokens := make(map[string]bool)
	for _, place := range e.vocab.Locations {
		if matchKeyword(lowered, tokenSet, place) {
			criteria.Locations = append(criteria.Locations, place)
			for _, t := range tokenRe.FindAllString(place, -1) {
				locationTokens[t] = true
			}
		}
	}

	// 7. General terms: significant leftovers, first-seen order, duplicates
	// allowed. Price expressions are stripped first so amounts like "50k"
	// never leak in.
	stripped := stripPriceExpressions(lowered)
	stop := make(map[string]bool, len(e.vocab.StopWords))
	for _, w := range e.vocab.StopWords {
		stop[w] = true
	}
	genderTokens := make(map[string]bool)
	for _, kw := range e.vocab.MaleKeywords {
		genderTokens[kw] = true
	}
	for _, kw := range e.vocab.FemaleKeywords {
		genderTokens[kw] = true
	}

	for _, tok := range tokenRe.FindAllString(stripped, -1) {
		if len(tok) <= 2 {
			continue
		}
		if stop[tok] || captured[tok] || locationTokens[tok] || genderTokens[tok] {
			continue
		}
		criteria.GeneralTerms = append(criteria.GeneralTerms, tok)
	}

	return criteria
}

// extractPriceBound returns the single bound a query implies, or nil when
// the query has no price pattern or contradicts itself with both.
func extractPriceBound(lowered string) *PriceBound {
	maxMatch := maxPriceRe.FindStringSubmatch(lowered)
	minMatch := minPriceRe.FindStringSubmatch(lowered)

	if maxMatch != nil && minMatch != nil {
		return nil
	}
	if maxMatch != nil {
		if amount, ok := parseAmount(maxMatch[1], maxMatch[2]); ok {
			return &PriceBound{Direction: BoundMax, Amount: amount}
		}
	}
	if minMatch != nil {
		if amount, ok := parseAmount(minMatch[1], minMatch[2]); ok {
			return &PriceBound{Direction: BoundMin, Amount: amount}
		}
	}
	return nil
}

func parseAmount(digits, suffix string) (float64, bool) {
	cleaned := strings.ReplaceAll(digits, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if suffix == "k" {
		amount *= 1000
	}
	return amount, true
}

func stripPriceExpressions(lowered string) string {
	out := maxPriceRe.ReplaceAllString(lowered, " ")
	return minPriceRe.ReplaceAllString(out, " ")
}

// matchKeyword matches single-word keywords against whole tokens (so "ram"
// does not fire inside "program") and multi-word keywords as substrings.
func matchKeyword(lowered string, tokenSet map[string]bool, keyword string) bool {
	if strings.ContainsAny(keyword, " -") {
		return strings.Contains(lowered, keyword)
	}
	return tokenSet[keyword]
}

func dedupe(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
