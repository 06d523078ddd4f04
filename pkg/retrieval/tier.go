// Package retrieval turns extracted criteria into tiered catalog queries.
// Each engine tries a strict predicate first, then a broadened word match,
// and finally falls back to recent stock, so a non-empty catalog always
// produces candidates.
package retrieval

import "regexp"

// Tier identifies which fallback stage produced a result set. It is kept on
// the result for testability; transports are free to drop it.
type Tier string

const (
	TierStrict   Tier = "strict"
	TierBroad    Tier = "broad"
	TierFallback Tier = "fallback"
)

// broadWordLimit caps how many query words feed the broad tier.
const broadWordLimit = 5

var wordRe = regexp.MustCompile(`[a-z0-9]+`)

// broadWords picks the first few significant words (length >= 3) from an
// already-lowercased query for the broad tier.
func broadWords(lowered string) []string {
	var words []string
	for _, w := range wordRe.FindAllString(lowered, -1) {
		if len(w) < 3 {
			continue
		}
		words = append(words, w)
		if len(words) == broadWordLimit {
			break
		}
	}
	return words
}

func capWords(words []string) []string {
	if len(words) > broadWordLimit {
		return words[:broadWordLimit]
	}
	return words
}
